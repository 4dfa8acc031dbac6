package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adamkeys/llvmshim"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the directories searched for the library",
	Long:  `List every directory searched for the LLVM codegen library in search order, with the strategy that produced it.`,
	Args:  cobra.NoArgs,
	RunE:  runCandidates,
}

func runCandidates(cmd *cobra.Command, args []string) error {
	ctx, cancel := searchContext(cmd.Context())
	defer cancel()

	candidates, err := llvmshim.Candidates(ctx, environment())
	if err != nil {
		return fmt.Errorf("collecting candidates: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tDIRECTORY")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\n", c.Strategy, c.Dir)
	}
	return w.Flush()
}
