package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamkeys/llvmshim"
)

var native bool

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Load the library and initialize its LLVM targets",
	Long: `Load the LLVM codegen library and call the target initialization function
of every backend it was built with. With --native only the backend of the
compiler's default target is initialized.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	targetsCmd.Flags().BoolVar(&native, "native", false, "initialize only the native backend")
}

func runTargets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path, err := libraryPath(ctx)
	if err != nil {
		return err
	}
	lib, err := llvmshim.Init(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Library: %s\n", lib.Path())

	if native {
		ctx, cancel := searchContext(ctx)
		defer cancel()

		backend, err := llvmshim.NativeBackend(ctx, environment())
		if err != nil {
			return fmt.Errorf("detecting native backend: %w", err)
		}
		if !llvmshim.InitializeTarget(lib, backend) {
			return fmt.Errorf("library does not export %s", backend.Symbol())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized: %s\n", backend)
		return nil
	}

	initialized := lib.InitializeAllTargets()
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %d of %d targets:\n", len(initialized), len(llvmshim.Backends))
	for _, b := range initialized {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", b)
	}
	return nil
}
