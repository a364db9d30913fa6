// Package cli defines the Cobra command tree for the seqseed CLI. Each file
// registers one top-level command (init, run, doctor, config, version) with
// the root command. Commands delegate to internal packages and only handle
// flags, output and the mapping of failures to the process exit status.
package cli
