/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: session.go
Description: Interactive session over one table. Reads command lines from an input
stream, dispatches them through a cobra command tree, and keeps running after
command errors until exit, quit or end of input.
*/

package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kleascm/statust/pkg/frame"
	"github.com/kleascm/statust/pkg/logging"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrNoTable means a command needs a table before setdata has loaded one
var ErrNoTable = errors.New("no table loaded, use setdata <path> first")

const (
	// Prompt is written before each command line
	Prompt = "=> "
	// DefaultPrintRows is the row count for print without an argument
	DefaultPrintRows = 5

	description = "Basic Statust REPL"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)

// Config controls a session
type Config struct {
	Delimiter string
	Styled    bool
	Logger    *logging.Logger
}

// Session owns the current table and the command tree that acts on it
type Session struct {
	config Config
	out    io.Writer
	root   *cobra.Command

	table  *frame.Table
	source string
	done   bool
}

// NewSession creates a session writing its output to out
func NewSession(out io.Writer, config Config) *Session {
	if config.Delimiter == "" {
		config.Delimiter = frame.DefaultDelimiter
	}
	s := &Session{config: config, out: out}
	s.root = s.newRootCommand()
	return s
}

// Table returns the current table, or nil before a load
func (s *Session) Table() *frame.Table { return s.table }

// Source returns the path of the current table
func (s *Session) Source() string { return s.source }

// Done reports whether exit or quit has run
func (s *Session) Done() bool { return s.done }

// Load reads path and replaces the current table. On failure the previous
// table stays loaded.
func (s *Session) Load(path string) error {
	start := time.Now()
	tbl, err := frame.Read(path, frame.WithDelimiter(s.config.Delimiter))
	if err != nil {
		return err
	}

	s.table = tbl
	s.source = path
	if s.config.Logger != nil {
		s.config.Logger.LogLoad(path, tbl.NumRows(), tbl.NumCols(), time.Since(start))
	}
	return nil
}

// Execute runs one command line, split shell-style so quoted arguments may
// contain spaces. Blank lines are ignored.
func (s *Session) Execute(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse command line: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	s.root.SetArgs(args)
	defer s.resetFlags()
	return s.root.Execute()
}

// resetFlags clears parsed flag values (such as -h) so they do not carry
// over into the next line
func (s *Session) resetFlags() {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	s.root.Flags().VisitAll(reset)
	for _, cmd := range s.root.Commands() {
		cmd.Flags().VisitAll(reset)
	}
}

// Run reads command lines from in until exit, end of input or ctx is
// cancelled. Command errors are printed and the loop continues.
// Cancellation is noticed while waiting for input too.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.printBanner()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, scanErr := readLines(ctx, in)

	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, Prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return <-scanErr
			}
			if err := s.Execute(line); err != nil {
				s.printError(err)
			}
		}
	}

	return nil
}

// readLines scans in on its own goroutine so a blocked read cannot hold
// up cancellation. lines is closed at end of input, after the scan error
// has been sent.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

func (s *Session) printBanner() {
	if s.config.Styled {
		fmt.Fprintln(s.out, bannerStyle.Render(description))
	} else {
		fmt.Fprintln(s.out, description)
	}
	fmt.Fprintln(s.out, "Type help for commands, exit to leave.")
}

func (s *Session) printError(err error) {
	msg := "Error: " + err.Error()
	if s.config.Styled {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(s.out, msg)
}

// requireTable returns the current table or ErrNoTable
func (s *Session) requireTable() (*frame.Table, error) {
	if s.table == nil {
		return nil, ErrNoTable
	}
	return s.table, nil
}
