// Package config provides the configuration structure for dwscan.
// It defines the scan targets and report output preferences populated
// from CLI flags. There are no config files and no environment variables;
// flags are the only configuration surface.
package config
