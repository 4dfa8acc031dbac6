package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamkeys/llvmshim"
)

var nativeCmd = &cobra.Command{
	Use:   "native",
	Short: "Print the LLVM backend of the compiler's default target",
	Args:  cobra.NoArgs,
	RunE:  runNative,
}

func runNative(cmd *cobra.Command, args []string) error {
	ctx, cancel := searchContext(cmd.Context())
	defer cancel()

	backend, err := llvmshim.NativeBackend(ctx, environment())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", backend, backend.Symbol())
	return nil
}
