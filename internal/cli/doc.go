// Package cli provides command-line interface setup and configuration
// for the langl application. It handles flag parsing, command creation,
// configuration management using cobra and viper, and logger setup.
package cli
