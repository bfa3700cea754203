/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: describe.go
Description: Describe command implementation. Prints or writes the column statistics
of a table and optionally stores a JSON run record.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/frame"
	"github.com/kleascm/statust/pkg/logging"
	"github.com/kleascm/statust/pkg/reporting"
	"github.com/kleascm/statust/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunDescribe describes the table at args[0]
func RunDescribe(cmd *cobra.Command, args []string) error {
	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	source := args[0]
	format, err := reporting.ParseFormat(viper.GetString("describe.format"))
	if err != nil {
		return err
	}

	record := utils.NewRunRecord("describe", Version, source)

	tbl, err := loadTable(source, logger)
	if err != nil {
		return err
	}

	report, err := describeTable(tbl, viper.GetString("describe.column"), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output := viper.GetString("describe.output"); output != "" {
		fw := reporting.NewFileWriter(output, source)
		if viper.IsSet("describe.format") {
			fw.Format = format
		}
		if err := fw.WriteMany(report); err != nil {
			return err
		}
		logger.LogReport(fw.Path, string(fw.Format))
		fmt.Fprintf(out, "💾 Report written to %s\n", fw.Path)
	} else if err := reporting.Write(out, format, reporting.NewDocument(source, report)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if metricsDir := viper.GetString("describe.metrics_dir"); metricsDir != "" {
		record.Rows = tbl.NumRows()
		record.Columns = tbl.NumCols()
		record.Described = report.Names()
		record.Duration = time.Since(record.StartedAt)

		path, err := utils.WriteRunRecord(metricsDir, record)
		if err != nil {
			return err
		}
		logger.Info("Run record written", map[string]interface{}{"path": path})
	}

	return nil
}

// describeTable builds the report for the whole table, or for one column
// when column is set
func describeTable(tbl *frame.Table, column string, logger *logging.Logger) (*analysis.Report, error) {
	start := time.Now()

	var report *analysis.Report
	if column != "" {
		res, err := analysis.DescribeColumn(tbl, column)
		if err != nil {
			return nil, err
		}
		report = analysis.NewReport(res)
	} else {
		var err error
		report, err = analysis.Describe(tbl)
		if err != nil {
			return nil, err
		}
	}

	logger.LogDescribe(report.Len(), time.Since(start))
	return report, nil
}
