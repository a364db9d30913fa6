// Package config manages project-level settings stored in seqseed.yaml in the
// working directory, overridable with SEQSEED_* environment variables. The
// file is validated against an embedded JSON Schema whenever it is read or
// written.
package config
