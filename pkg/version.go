// Package metroreg loads Eurostat metropolitan region statistics
// into a relational database.
package metroreg

var (
	// Version of metroreg, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
