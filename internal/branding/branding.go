// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only edits the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigFile  string `yaml:"config_file"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "seqseed",
			DisplayName: "SeqSeed",
			Description: "Scaffold and run a Sequelize database seeder for NestJS projects",
			EnvPrefix:   "SEQSEED",
			ConfigFile:  "seqseed.yaml",
			GitHubRepo:  "seqseed/seqseed",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "seqseed").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "SEQSEED").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the project-level settings file name (e.g., "seqseed.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RepositoryURL returns the project's GitHub URL.
func RepositoryURL() string { return "https://github.com/" + GitHubRepo() }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("runner") → "SEQSEED_RUNNER".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
