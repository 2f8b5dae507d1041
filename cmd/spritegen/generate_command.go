package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/IndyHallLabs/css-sprite-generator/internal/sprite"
)

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [directory]",
		Short: "Composite every pair and delete the hover-state sources",
		Long: `Composite every pair into a vertically stacked sprite.

Each pair's primary file is overwritten with the sprite and its secondary
(hover-state) file is deleted. The batch halts at the first failure unless
--continue-on-error is set; pairs already processed stay committed either
way.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, args)
			if err != nil {
				return err
			}
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			bg, err := cfg.BackgroundColor()
			if err != nil {
				return err
			}

			runner := sprite.Runner{
				Writer: sprite.Writer{
					Format:      reg.Format(),
					JPEGQuality: cfg.JPEGQuality,
				},
				Background:      bg,
				ContinueOnError: cfg.ContinueOnError,
				Log:             slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)),
			}
			return runner.Run(reg.Pairs())
		},
	}
}
