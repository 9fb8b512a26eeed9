package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/libyear/internal/config"
	"github.com/matzehuels/libyear/pkg/buildinfo"
	"github.com/matzehuels/libyear/pkg/errors"
)

const appName = "libyear"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"sort":             config.KeySort,
	"top":              config.KeyTop,
	"manifest-path":    config.KeyManifestPath,
	"resolver":         config.KeyResolver,
	"format":           config.KeyFormat,
	"registry-url":     config.KeyRegistryURL,
	"request-interval": config.KeyRequestInterval,
	"timeout":          config.KeyTimeout,
	"user-agent":       config.KeyUserAgent,
	"no-progress":      config.KeyNoProgress,
	"verbose":          config.KeyVerbose,
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives the report; Err receives logs and the spinner.
	Out io.Writer
	Err io.Writer

	viper   *viper.Viper
	cfgFile string
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		viper:  viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command. Running it without a subcommand
// prints the report for the current Cargo project.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Measure how outdated a Rust project's dependencies are",
		Long: `libyear reports, for every dependency of a Cargo project, how much time
separates the release in use from the newest release on crates.io, and sums
the result into a single number of "libyears".`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("top") {
				if top, _ := cmd.Flags().GetInt("top"); top < 1 {
					return errors.New(errors.ErrCodeInvalidInput, "--top must be at least 1, got %d", top)
				}
			}
			cfg, err := config.Load(c.viper)
			if err != nil {
				return err
			}
			return c.runReport(cmd.Context(), cfg)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.String("manifest-path", "", "path to Cargo.toml or Cargo.lock (default \"./Cargo.toml\")")
	flags.String("sort", "", "sort order: alphabetical or libyear (default \"alphabetical\")")
	flags.Int("top", 0, "show only the first N dependencies (default all)")
	flags.String("resolver", "", "dependency resolver: auto, metadata or lockfile (default \"auto\")")
	flags.String("format", "", "output format: table or json (default \"table\")")
	flags.String("registry-url", "", "crates.io API base URL")
	flags.Duration("request-interval", 0, "minimum delay between registry requests (default 100ms)")
	flags.Duration("timeout", 0, "per-request HTTP timeout (default 10s)")
	flags.String("user-agent", "", "User-Agent sent to the registry")
	flags.Bool("no-progress", false, "disable the progress spinner")

	persistent := root.PersistentFlags()
	persistent.StringVar(&c.cfgFile, "config", "", "config file (default .libyear.yaml in the working or home directory)")
	persistent.BoolP("verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.completionCommand())
	return root
}

// initConfig loads the config file and environment into the CLI's viper
// instance, binds the flags that were set and applies the log level.
func (c *CLI) initConfig(cmd *cobra.Command) error {
	if err := config.Init(c.viper, c.cfgFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := c.viper.BindPFlag(key, f); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "bind flag --%s", name)
		}
	}

	level := LogInfo
	if c.viper.GetBool(config.KeyVerbose) {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
