package cli

import (
	"github.com/spf13/cobra"

	"github.com/Brono25/cacoepy/pretty"
	"github.com/Brono25/cacoepy/reconcile"
)

// ReconcileResult is the JSON payload of the reconcile command.
type ReconcileResult struct {
	Reference []string `json:"reference"`
	PartnerA  []string `json:"partner_a"`
	PartnerB  []string `json:"partner_b"`
}

type reconcileFlags struct {
	refA, partnerA string
	refB, partnerB string
	gapSymbol      string
}

// NewReconcileCommand creates the reconcile command.
func NewReconcileCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Merge two alignments that share a reference",
		Long: `Merge (ref-a, partner-a) and (ref-b, partner-b) into one three-way
alignment. ref-a and ref-b must be the same sequence once gaps are
removed; each partner must have the length of its reference.`,
		Example: `  cacoepy reconcile --ref-a "a a a" --partner-a "x - x" \
      --ref-b "a a - a" --partner-b "z z - z"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVar(&flags.refA, "ref-a", "", "reference as aligned to partner-a (required)")
	cmd.Flags().StringVar(&flags.partnerA, "partner-a", "", "first partner sequence (required)")
	cmd.Flags().StringVar(&flags.refB, "ref-b", "", "reference as aligned to partner-b (required)")
	cmd.Flags().StringVar(&flags.partnerB, "partner-b", "", "second partner sequence (required)")
	cmd.Flags().StringVar(&flags.gapSymbol, "gap-symbol", "", "gap token (default: config gap_symbol)")
	for _, name := range []string{"ref-a", "partner-a", "ref-b", "partner-b"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runReconcile(opts *RootOptions, flags *reconcileFlags, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := opts.loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	gap := cfg.GapSymbol
	if flags.gapSymbol != "" {
		gap = flags.gapSymbol
	}

	tr, err := reconcile.Pairs(
		tokens(flags.refA, false), tokens(flags.partnerA, false),
		tokens(flags.refB, false), tokens(flags.partnerB, false),
		gap,
	)
	if err != nil {
		return WrapExitError(ExitFailure, "reconciliation failed", err)
	}
	opts.log().Debug("reconciled", "len", tr.Len(), "gap_symbol", gap)

	result := ReconcileResult{Reference: tr.Reference, PartnerA: tr.PartnerA, PartnerB: tr.PartnerB}
	text := pretty.Labeled(
		[]string{"reference", "partner-a", "partner-b"},
		tr.Reference, tr.PartnerA, tr.PartnerB,
	)

	return formatter.Success(text, result)
}
