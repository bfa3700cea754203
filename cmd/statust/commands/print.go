/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: print.go
Description: Print command implementation.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunPrint previews the table at args[0]
func RunPrint(cmd *cobra.Command, args []string) error {
	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	tbl, err := loadTable(args[0], logger)
	if err != nil {
		return err
	}

	rows := viper.GetInt("print.rows")
	if rows < 0 {
		return fmt.Errorf("invalid row count %d", rows)
	}

	out := cmd.OutOrStdout()
	if viper.GetBool("print.styled") {
		fmt.Fprintln(out, tbl.Render(rows))
		return nil
	}
	return tbl.Print(out, rows)
}
