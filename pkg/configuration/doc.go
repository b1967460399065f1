// Package configuration provides loading facilities for the YAML-based global
// configuration file, which supplies default selection patterns for commands
// that don't specify their own.
package configuration
