package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/seqseed/seqseed/internal/branding"
	"github.com/seqseed/seqseed/internal/scaffold"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyScaffoldDir     = "scaffold_dir"
	KeySourceRoot      = "source_root"
	KeyRunner          = "runner"
	KeyDialect         = "dialect"
	KeyUseConfigModule = "use_config_module"
)

// Defaults applied when neither the file nor the environment sets a key.
const (
	DefaultScaffoldDir = "src/database-seeder"
	DefaultSourceRoot  = "src"
	DefaultRunner      = "npx ts-node"
)

// Settings is the resolved project configuration.
type Settings struct {
	ScaffoldDir string
	SourceRoot  string
	Runner      string

	// Dialect and UseConfigModule pre-answer the init prompts when set.
	Dialect         string
	UseConfigModule *bool
}

var v = viper.New()

// FilePath returns the settings file path for a project directory.
func FilePath(projectDir string) string {
	return filepath.Join(projectDir, branding.ConfigFile())
}

// Load reads settings for the project in projectDir. A missing file is not an
// error; a file that fails schema validation is.
func Load(projectDir string) (*Settings, error) {
	v = viper.New()
	v.SetConfigFile(FilePath(projectDir))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyScaffoldDir, DefaultScaffoldDir)
	v.SetDefault(KeySourceRoot, DefaultSourceRoot)
	v.SetDefault(KeyRunner, DefaultRunner)

	if err := validateFile(FilePath(projectDir)); err != nil {
		return nil, err
	}
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", branding.ConfigFile(), err)
	}

	s := &Settings{
		ScaffoldDir: v.GetString(KeyScaffoldDir),
		SourceRoot:  v.GetString(KeySourceRoot),
		Runner:      v.GetString(KeyRunner),
	}

	// Environment values bypass the schema, so the init answers are checked
	// here rather than trusting viper's lenient conversions.
	if v.IsSet(KeyDialect) {
		d, err := scaffold.ParseDialect(v.GetString(KeyDialect))
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", KeyDialect, branding.EnvVar(KeyDialect), err)
		}
		s.Dialect = string(d)
	}
	if v.IsSet(KeyUseConfigModule) {
		b, err := cast.ToBoolE(v.Get(KeyUseConfigModule))
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", KeyUseConfigModule, branding.EnvVar(KeyUseConfigModule), err)
		}
		s.UseConfigModule = &b
	}
	return s, nil
}

// Get returns a setting by key from the last Load. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Set writes a key-value pair to the project's settings file, creating it if
// needed. The updated document must pass schema validation before it is saved.
func Set(projectDir, key, value string) error {
	path := FilePath(projectDir)

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	doc[key] = typedValue(key, value)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{File: path, Issues: result.Issues}
	}

	w := viper.New()
	w.SetConfigType(fileType)
	for k, val := range doc {
		w.Set(k, val)
	}
	if err := w.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// readDocument returns the raw key-value content of the settings file, or an
// empty document if the file does not exist.
func readDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// typedValue converts command-line strings for boolean keys.
func typedValue(key, value string) any {
	if key == KeyUseConfigModule {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return value
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return &InvalidError{File: path, Issues: result.Issues}
	}
	return nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}
