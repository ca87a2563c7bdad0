package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a text word file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			problems, err := wordfile.Validate(args[0])
			if err != nil {
				return fmt.Errorf("wordfile.Validate(%s) > %w", args[0], err)
			}

			displayProblems(cmd, problems, cfg.Output.Color)
			if len(problems) > 0 {
				return fmt.Errorf("validation failed with %d error(s)", len(problems))
			}
			return nil
		},
	}
}

func displayProblems(cmd *cobra.Command, problems []wordfile.Problem, useColor bool) {
	output := cmd.OutOrStdout()
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	if !useColor {
		red.DisableColor()
		green.DisableColor()
	}

	if len(problems) == 0 {
		_, _ = green.Fprintln(output, "✅ No problems found")
		return
	}
	for _, problem := range problems {
		_, _ = red.Fprintf(output, "❌ %s\n", problem)
	}
}
