// Package cli implements the mcpclient command line: it loads Options from flags and an
// optional YAML config, creates the client service and runs a single command, printing
// the JSON result to stdout.
package cli
