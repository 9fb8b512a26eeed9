// Package config loads libyear settings from defaults, a .libyear.yaml
// file, LIBYEAR_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/libyear/pkg/buildinfo"
	"github.com/matzehuels/libyear/pkg/deps/rust"
	"github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/integrations"
	"github.com/matzehuels/libyear/pkg/integrations/crates"
	"github.com/matzehuels/libyear/pkg/libyear"
)

// EnvPrefix prefixes every environment variable libyear reads.
const EnvPrefix = "LIBYEAR"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config keys, shared with the flag bindings in the CLI.
const (
	KeySort            = "sort"
	KeyTop             = "top"
	KeyManifestPath    = "manifest_path"
	KeyResolver        = "resolver"
	KeyFormat          = "format"
	KeyRegistryURL     = "registry_url"
	KeyRequestInterval = "request_interval"
	KeyTimeout         = "timeout"
	KeyUserAgent       = "user_agent"
	KeyNoProgress      = "no_progress"
	KeyVerbose         = "verbose"
)

// Config holds the settings of one run.
type Config struct {
	Sort            string        `mapstructure:"sort"`
	Top             int           `mapstructure:"top"`
	ManifestPath    string        `mapstructure:"manifest_path"`
	Resolver        string        `mapstructure:"resolver"`
	Format          string        `mapstructure:"format"`
	RegistryURL     string        `mapstructure:"registry_url"`
	RequestInterval time.Duration `mapstructure:"request_interval"`
	Timeout         time.Duration `mapstructure:"timeout"`
	UserAgent       string        `mapstructure:"user_agent"`
	NoProgress      bool          `mapstructure:"no_progress"`
	Verbose         bool          `mapstructure:"verbose"`

	// Parsed forms, filled in by Load.
	SortPolicy   libyear.SortPolicy `mapstructure:"-"`
	ResolverKind rust.Resolver      `mapstructure:"-"`
}

// SetDefaults registers the built-in value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySort, libyear.SortAlphabetical.String())
	v.SetDefault(KeyTop, 0)
	v.SetDefault(KeyManifestPath, rust.DefaultManifestPath)
	v.SetDefault(KeyResolver, string(rust.ResolverAuto))
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyRegistryURL, crates.DefaultBaseURL)
	v.SetDefault(KeyRequestInterval, integrations.DefaultMinInterval)
	v.SetDefault(KeyTimeout, integrations.DefaultTimeout)
	v.SetDefault(KeyUserAgent, buildinfo.UserAgent())
	v.SetDefault(KeyNoProgress, false)
	v.SetDefault(KeyVerbose, false)
}

// Init points v at its config file and the environment. An explicit
// cfgFile must exist; otherwise .libyear.yaml is looked up in the working
// directory and then the home directory, and may be absent.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".libyear")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && stderrors.As(err, &notFound) {
			return nil
		}
		if stderrors.Is(err, os.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", cfgFile)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}
	return nil
}

// Load applies defaults, decodes v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}

	policy, err := libyear.ParseSortPolicy(cfg.Sort)
	if err != nil {
		return Config{}, err
	}
	cfg.SortPolicy = policy

	resolver, err := rust.ParseResolver(cfg.Resolver)
	if err != nil {
		return Config{}, err
	}
	cfg.ResolverKind = resolver

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case FormatTable, FormatJSON:
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table or json)", cfg.Format)
	}

	if cfg.Top < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "top must not be negative, got %d", cfg.Top)
	}
	if cfg.Timeout <= 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.RequestInterval < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "request interval must not be negative, got %s", cfg.RequestInterval)
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = buildinfo.UserAgent()
	}
	return cfg, nil
}
