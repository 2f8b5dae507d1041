package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IndyHallLabs/css-sprite-generator/internal/config"
	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
	"github.com/IndyHallLabs/css-sprite-generator/internal/sprite"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// rootOptions collects the persistent flag values shared by every
// subcommand. Zero values mean "not set": they leave the config file or
// built-in defaults alone.
type rootOptions struct {
	configPath       string
	directory        string
	format           string
	primaryPattern   string
	secondaryPattern string
	background       string
	jpegQuality      int
	continueOnError  bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "spritegen",
		Short:         "Composite default/hover image pairs into CSS sprites",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "configuration file path")
	pf.StringVarP(&opts.directory, "directory", "d", "", "directory to scan for image pairs")
	pf.StringVar(&opts.format, "format", "", "output format: png, jpeg, or gif")
	pf.StringVar(&opts.primaryPattern, "primary-pattern", "", "regexp matching default-state images")
	pf.StringVar(&opts.secondaryPattern, "secondary-pattern", "", "regexp matching hover-state images")
	pf.StringVar(&opts.background, "background", "", "canvas fill color (#RRGGBB)")
	pf.IntVar(&opts.jpegQuality, "jpeg-quality", 0, "JPEG output quality (1-100)")
	pf.BoolVar(&opts.continueOnError, "continue-on-error", false, "process every pair, reporting failures at the end")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newPlanCommand(opts))

	return rootCmd
}

// loadConfig overlays flag values on the config file (when one is given) or
// the built-in defaults, then validates the result. A positional directory
// argument wins over both the --directory flag and the file.
func loadConfig(opts *rootOptions, args []string) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if opts.directory != "" {
		cfg.Directory = opts.directory
	}
	if len(args) > 0 {
		cfg.Directory = args[0]
	}
	if opts.format != "" {
		cfg.OutputFormat = opts.format
	}
	if opts.primaryPattern != "" {
		cfg.PrimaryPattern = opts.primaryPattern
	}
	if opts.secondaryPattern != "" {
		cfg.SecondaryPattern = opts.secondaryPattern
	}
	if opts.background != "" {
		cfg.Background = opts.background
	}
	if opts.jpegQuality != 0 {
		cfg.JPEGQuality = opts.jpegQuality
	}
	if opts.continueOnError {
		cfg.ContinueOnError = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildRegistry resolves the configuration into a loaded pair registry,
// preferring explicit pairs over directory discovery.
func buildRegistry(cfg config.Config) (*sprite.Registry, error) {
	reg := sprite.NewRegistry()

	rule, err := sprite.CompilePatterns(cfg.PrimaryPattern, cfg.SecondaryPattern)
	if err != nil {
		return nil, err
	}
	reg.SetPatterns(rule)

	format, err := imaging.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	reg.SetFormat(format)

	if len(cfg.Pairs) > 0 {
		pairs := make([]sprite.Pair, len(cfg.Pairs))
		for i, p := range cfg.Pairs {
			pairs[i] = sprite.Pair{Primary: p[0], Secondary: p[1]}
		}
		if err := reg.SetPairs(pairs); err != nil {
			return nil, err
		}
		return reg, nil
	}

	if cfg.Directory == "" {
		return nil, errors.New("no directory or explicit pairs configured")
	}
	if err := reg.SetDirectory(cfg.Directory); err != nil {
		return nil, err
	}
	return reg, nil
}
