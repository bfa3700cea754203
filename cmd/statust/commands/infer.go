/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/statust/pkg/inference"
	"github.com/spf13/cobra"
)

// RunInfer prints the inferred kind and value of every argument
func RunInfer(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, token := range args {
		v := inference.Infer(token)
		fmt.Fprintf(out, "%s -> %s %s\n", token, v.Kind(), v)
	}
	return nil
}
