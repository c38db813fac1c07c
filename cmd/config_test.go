package cmd

import (
	"testing"

	"github.com/gnames/metroreg/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigYAML(t *testing.T) {
	c := config.New()
	c.Update([]config.Option{config.OptDatabasePassword("secret")})

	bs, err := configYAML(c)
	require.NoError(t, err)
	assert.NotContains(t, string(bs), "secret")
	assert.Contains(t, string(bs), "********")
	assert.Equal(t, "secret", c.Database.Password, "config is not modified")

	var res config.Config
	require.NoError(t, yaml.Unmarshal(bs, &res))
	assert.Equal(t, c.Sweep, res.Sweep)
	assert.Equal(t, c.API, res.API)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url:")
	assert.Contains(t, out, "age_group_codes:")
	assert.NotContains(t, out, "home_dir")
}
