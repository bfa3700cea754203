/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for statust. Reads delimited tables, infers cell
types, and prints or writes column statistics. Flags are bound to viper so every
option can also come from a config file or STATUST_ environment variables.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kleascm/statust/cmd/statust/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	delimiter  string

	// Logging configuration
	logLevel    string
	logFormat   string
	logDir      string
	logMaxFiles int
	logCompress bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statust",
		Short: "statust - type inference and column statistics for delimited tables",
		Long: `statust reads comma-delimited tables (plain, gzip, zstd or an HTML <table>),
infers a scalar type for every cell, and describes each column: range, mean and
standard deviation for numbers, unique values and the most frequent value for
text, and true/false counts for booleans.`,
		Version:       commands.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", ",", "Cell delimiter")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log file directory (empty logs to stderr only)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress finished log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("delimiter", rootCmd.PersistentFlags().Lookup("delimiter"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add describe command
	describeCmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Describe every column of a table",
		Long: `Read a table and print one statistics block per column. With --output the
report is written to a file instead; the format follows the file extension
(.json, .html, anything else is text) and a trailing .gz or .zst compresses it.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunDescribe,
	}
	describeCmd.Flags().String("column", "", "Describe only this column")
	describeCmd.Flags().String("output", "", "Write the report to this file")
	describeCmd.Flags().String("format", "text", "Report format (text, json, html)")
	describeCmd.Flags().String("metrics-dir", "", "Directory for JSON run records")
	viper.BindPFlag("describe.column", describeCmd.Flags().Lookup("column"))
	viper.BindPFlag("describe.output", describeCmd.Flags().Lookup("output"))
	viper.BindPFlag("describe.format", describeCmd.Flags().Lookup("format"))
	viper.BindPFlag("describe.metrics_dir", describeCmd.Flags().Lookup("metrics-dir"))

	// Add print command
	printCmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print the header and the first rows of a table",
		Args:  cobra.ExactArgs(1),
		RunE:  commands.RunPrint,
	}
	printCmd.Flags().Int("rows", 5, "Number of rows to print")
	printCmd.Flags().Bool("styled", false, "Draw a bordered table")
	viper.BindPFlag("print.rows", printCmd.Flags().Lookup("rows"))
	viper.BindPFlag("print.styled", printCmd.Flags().Lookup("styled"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:                "infer <token>...",
		Short:              "Show the inferred type of each token",
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE:               commands.RunInfer,
	}

	// Add repl command
	replCmd := &cobra.Command{
		Use:   "repl [file]",
		Short: "Start an interactive session",
		Long: `Start a line-oriented session reading commands from stdin: setdata (load),
print, describe, write, infer, help and exit (quit). An optional file is loaded
before the first prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunRepl,
	}
	replCmd.Flags().Bool("styled", false, "Styled banner, errors and table prints")
	viper.BindPFlag("repl.styled", replCmd.Flags().Lookup("styled"))

	rootCmd.AddCommand(describeCmd, printCmd, inferCmd, replCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
