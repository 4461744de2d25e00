package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mrtguide/app"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Ask for routes in a prompt loop",
	Long:  `Prompts for "start, end[, YYYY-MM-DDTHH:MM]" until "exit" or "e".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	s := &app.Session{
		Finder:    e.finder,
		Formatter: e.formatter,
		Limit:     e.cfg.Limit,
		Log:       e.log,
	}

	var src app.LineSource
	if in := cmd.InOrStdin(); in == os.Stdin && isatty.IsTerminal(os.Stdin.Fd()) {
		src = &promptSource{accessible: os.Getenv("ACCESSIBLE") != ""}
	} else {
		src = &scanSource{sc: bufio.NewScanner(in)}
	}

	return s.Run(src, cmd.OutOrStdout())
}

// promptSource reads lines through a huh input field.
type promptSource struct {
	accessible bool
}

func (p *promptSource) ReadLine() (string, error) {
	var line string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.TrimSuffix(app.Prompt, ": ")).
				Placeholder("Jurong East, Bugis, 2019-01-31T08:00").
				Value(&line),
		),
	).WithAccessible(p.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", io.EOF
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	return line, nil
}

// scanSource reads lines from piped input.
type scanSource struct {
	sc *bufio.Scanner
}

func (s *scanSource) ReadLine() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
