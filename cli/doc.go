// Package cli implements the tonclient command line.
//
// Global flags configure the client, the subcommand selects the operation and results
// are printed to stdout as indented JSON. Logs go to stderr.
package cli
