package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Print the path of the LLVM codegen library",
	Args:  cobra.NoArgs,
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	path, err := libraryPath(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
