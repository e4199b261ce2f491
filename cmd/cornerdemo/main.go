// Package main demonstrates corner's error decoration from the command line.
// It raises a decorated error through a small chain of helpers and renders
// the message, helpful message, support link, and a source snippet, so the
// frame-walking behavior can be explored interactively with flags.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sura-laboratory/corner"
)

var (
	linesBefore int
	linesAfter  int
	frameOffset int
)

// rootCmd raises a demo error and renders its decoration.
var rootCmd = &cobra.Command{
	Use:           "cornerdemo",
	Short:         "Raise a decorated error and inspect its snippet",
	Long:          `cornerdemo raises an example corner error through nested helpers and prints its helpful message, support link, and a source snippet. Use --frame to walk outward through the captured stack.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := loadProfile("demo-user")
		if err == nil {
			return nil
		}

		var cornerErr corner.CornerError
		if !corner.As(err, &cornerErr) {
			return err
		}

		pterm.Println(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Error: ") + cornerErr.Error())
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Helpful message: ") + cornerErr.HelpfulMessage())
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Support link:    ") + cornerErr.SupportLink())
		pterm.Println()

		snippet, err := cornerErr.Snippet(linesBefore, linesAfter, frameOffset)
		if err != nil {
			return err
		}
		if snippet == "" {
			pterm.Println("No source is available for the selected frame.")
			return nil
		}

		title := fmt.Sprintf("Snippet (frame %d)", frameOffset)
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(title)).
			Println(snippet)
		return nil
	},
}

// loadProfile stands in for an application code path that fails.
func loadProfile(name string) error {
	if err := fetchProfile(name); err != nil {
		return corner.Wrap(err, corner.KindExample, "could not load profile")
	}
	return nil
}

func fetchProfile(name string) error {
	// The demo store has no users, so this always fails.
	return fmt.Errorf("no profile named %q", name)
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&linesBefore, "before", 2, "Lines of context above the frame's line")
	rootCmd.Flags().IntVar(&linesAfter, "after", 2, "Lines of context below the frame's line")
	rootCmd.Flags().IntVar(&frameOffset, "frame", 0, "Stack frame offset, 0 is the failure site")
}

func main() {
	Execute()
}
