package main

import (
	"github.com/spf13/cobra"

	"github.com/sigman78/zafran/internal/demo"
)

func newDemoCmd() *cobra.Command {
	var speed string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play the built-in progress bar sessions",
		Long: `Play three scripted sessions on one bar:

  1. a plain bar with a prefix and '=' glyphs
  2. the same bar relabelled while it runs
  3. a 1000-unit bar in the download style

Speeds:
  instant  no pauses
  fast     a fifth of normal
  normal   30-60ms per step (default)
  slow     twice normal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := demo.ParseSpeed(speed)
			if err != nil {
				return &usageError{err: err}
			}
			return demo.Run(cmd.Context(), demo.NewConfig(cmd.OutOrStdout(), s))
		},
	}
	cmd.Flags().StringVar(&speed, "speed", string(demo.SpeedNormal),
		"Demo speed: instant, fast, normal, slow")
	return cmd
}
