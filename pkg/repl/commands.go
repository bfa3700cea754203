/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: commands.go
Description: Command tree for the interactive session.
*/

package repl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/inference"
	"github.com/kleascm/statust/pkg/reporting"
	"github.com/spf13/cobra"
)

func (s *Session) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "statust",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.AddCommand(
		&cobra.Command{
			Use:     "setdata <path>",
			Aliases: []string{"load"},
			Short:   "Read data from a file",
			Args:    cobra.ExactArgs(1),
			RunE:    s.runSetData,
		},
		&cobra.Command{
			Use:   "print [rows]",
			Short: "Print the header and the first rows",
			Args:  cobra.MaximumNArgs(1),
			RunE:  s.runPrint,
		},
		&cobra.Command{
			Use:   "describe [column]",
			Short: "Describe every column, or one column",
			Args:  cobra.MaximumNArgs(1),
			RunE:  s.runDescribe,
		},
		&cobra.Command{
			Use:   "write <path> [column]",
			Short: "Write the description to a file (.txt, .json, .html, optionally .gz or .zst)",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  s.runWrite,
		},
		&cobra.Command{
			Use:                "infer <token>...",
			Short:              "Show the inferred type of each token",
			Args:               cobra.MinimumNArgs(1),
			DisableFlagParsing: true, // tokens such as -1 are values, not flags
			RunE:               s.runInfer,
		},
		&cobra.Command{
			Use:     "exit",
			Aliases: []string{"quit"},
			Short:   "Leave the session",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.done = true
				return nil
			},
		},
	)

	root.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "List commands",
		Args:  cobra.NoArgs,
		RunE:  s.runHelp,
	})

	return root
}

func (s *Session) runSetData(cmd *cobra.Command, args []string) error {
	if err := s.Load(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Table read from %s (%d rows, %d columns)\n",
		s.source, s.table.NumRows(), s.table.NumCols())
	return nil
}

func (s *Session) runPrint(cmd *cobra.Command, args []string) error {
	tbl, err := s.requireTable()
	if err != nil {
		return err
	}

	rows := DefaultPrintRows
	if len(args) == 1 {
		rows, err = strconv.Atoi(args[0])
		if err != nil || rows < 0 {
			return fmt.Errorf("invalid row count %q", args[0])
		}
	}

	if s.config.Styled {
		fmt.Fprintln(s.out, tbl.Render(rows))
		return nil
	}
	return tbl.Print(s.out, rows)
}

func (s *Session) runDescribe(cmd *cobra.Command, args []string) error {
	report, err := s.describe(args)
	if err != nil {
		return err
	}
	return reporting.WriteText(s.out, report)
}

func (s *Session) runWrite(cmd *cobra.Command, args []string) error {
	report, err := s.describe(args[1:])
	if err != nil {
		return err
	}

	fw := reporting.NewFileWriter(args[0], s.source)
	if err := fw.WriteMany(report); err != nil {
		return err
	}
	if s.config.Logger != nil {
		s.config.Logger.LogReport(fw.Path, string(fw.Format))
	}
	fmt.Fprintf(s.out, "Report written to %s\n", fw.Path)
	return nil
}

func (s *Session) runInfer(cmd *cobra.Command, args []string) error {
	for _, token := range args {
		v := inference.Infer(token)
		fmt.Fprintf(s.out, "%s -> %s %s\n", token, v.Kind(), v)
	}
	return nil
}

func (s *Session) runHelp(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(s.out, description)
	for _, c := range s.root.Commands() {
		name := c.Use
		if len(c.Aliases) > 0 {
			name += " (" + strings.Join(c.Aliases, ", ") + ")"
		}
		fmt.Fprintf(s.out, "  %-28s %s\n", name, c.Short)
	}
	return nil
}

// describe builds a report for the whole table, or for the single column
// named in args
func (s *Session) describe(args []string) (*analysis.Report, error) {
	tbl, err := s.requireTable()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var report *analysis.Report
	if len(args) == 1 {
		res, err := analysis.DescribeColumn(tbl, args[0])
		if err != nil {
			return nil, err
		}
		report = analysis.NewReport(res)
	} else {
		report, err = analysis.Describe(tbl)
		if err != nil {
			return nil, err
		}
	}

	if s.config.Logger != nil {
		s.config.Logger.LogDescribe(report.Len(), time.Since(start))
	}
	return report, nil
}
