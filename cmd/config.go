package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command that prints the effective
// configuration.
func getConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after config.yaml, environment variables
and defaults are merged. The database password is masked.

Config file: ~/.config/metroreg/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := configYAML(cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			_, err = cmd.OutOrStdout().Write(bs)
			return err
		},
	}
}

// configYAML renders a configuration with its password masked.
func configYAML(c *config.Config) ([]byte, error) {
	res := *c
	if res.Database.Password != "" {
		res.Database.Password = "********"
	}
	return yaml.Marshal(res)
}
