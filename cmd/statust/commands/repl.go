/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: repl.go
Description: Repl command implementation. Runs an interactive session on stdin.
*/

package commands

import (
	"context"
	"errors"

	"github.com/kleascm/statust/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunRepl starts a session, loading args[0] first when given
func RunRepl(cmd *cobra.Command, args []string) error {
	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	session := repl.NewSession(cmd.OutOrStdout(), repl.Config{
		Delimiter: delimiter(),
		Styled:    viper.GetBool("repl.styled"),
		Logger:    logger,
	})

	if len(args) == 1 {
		if err := session.Load(args[0]); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = session.Run(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
