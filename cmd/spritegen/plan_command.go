package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [directory]",
		Short: "Show the pairs a generate run would composite, without touching any file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, args)
			if err != nil {
				return err
			}
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}

			pairs := reg.Pairs()
			if len(pairs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pairs found")
				return nil
			}

			rows := make([][]string, len(pairs))
			for i, p := range pairs {
				rows[i] = []string{
					strconv.Itoa(i + 1),
					p.Primary,
					p.Secondary,
					reg.Format().String(),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"#", "Primary", "Secondary", "Format"}, rows))
			return nil
		},
	}
}
