package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mrtguide/formatter"
	"github.com/katalvlaran/mrtguide/mrtmap"
	"github.com/katalvlaran/mrtguide/pathfinder"
)

// Fixed session texts.
const (
	Welcome = "Welcome to MRT Guide"
	Goodbye = "Thanks for using MRT Guide"
	Prompt  = `Input start, end and optional datetime separated by comma or exit with "exit"/"e": `
)

var errUnrecognizable = errors.New("unrecognizable input")

// Finder answers route queries; *pathfinder.PathFinder satisfies it.
type Finder interface {
	FindRoutes(start, end string, opts ...pathfinder.QueryOption) ([]mrtmap.Route, error)
}

// LineSource yields user input one line at a time. io.EOF ends the session.
type LineSource interface {
	ReadLine() (string, error)
}

// Session turns input lines into formatted answers.
type Session struct {
	Finder    Finder
	Formatter formatter.Formatter
	Limit     int
	Log       *slog.Logger // optional
}

// Handle answers one input line. quit is true for "exit" and "e".
//
// Accepted input: "start, end" or "start, end, YYYY-MM-DDTHH:MM".
func (s *Session) Handle(line string) (output string, quit bool) {
	line = strings.TrimSpace(line)
	if line == "exit" || line == "e" {
		return "", true
	}

	tokens := strings.Split(line, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	out, err := s.answer(tokens)
	switch {
	case err == nil:
		return out, false
	case errors.Is(err, errUnrecognizable),
		errors.Is(err, mrtmap.ErrUnknownStation),
		errors.Is(err, pathfinder.ErrMalformedTime):
		return fmt.Sprintf("Error: %s. Please try again.", err), false
	default:
		if s.Log != nil {
			s.Log.Error("query failed", "input", line, "err", err)
		}
		return fmt.Sprintf("Unknown error: %s. Sorry for this and try again.", err), false
	}
}

func (s *Session) answer(tokens []string) (string, error) {
	opts := []pathfinder.QueryOption{pathfinder.Limit(s.Limit)}
	switch len(tokens) {
	case 2:
	case 3:
		opts = append(opts, pathfinder.At(tokens[2]))
	default:
		return "", errUnrecognizable
	}

	start, end := tokens[0], tokens[1]
	routes, err := s.Finder.FindRoutes(start, end, opts...)
	if err != nil {
		return "", err
	}

	return s.Formatter.Format(start, end, routes, formatter.Options{
		Limit:    s.Limit,
		ShowCost: len(tokens) == 3,
	}), nil
}

// Run greets, then prompts and answers until the user quits or src is exhausted.
func (s *Session) Run(src LineSource, out io.Writer) error {
	fmt.Fprintln(out, Welcome)
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		answer, quit := s.Handle(line)
		if quit {
			break
		}
		fmt.Fprintln(out, answer)
	}
	fmt.Fprintln(out, Goodbye)

	return nil
}
