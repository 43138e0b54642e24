package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/Brono25/cacoepy/internal/config"
)

// scoringFlags are the per-command overrides of config.Config.
type scoringFlags struct {
	scheme    string
	gap       float64
	match     float64
	mismatch  float64
	gapSymbol string
	mapping   string
}

// addScoringFlags registers the scoring flags on cmd. Defaults shown in help
// are the built-in ones; only flags set explicitly override the config file.
func addScoringFlags(cmd *cobra.Command, f *scoringFlags) {
	def := config.Default()
	cmd.Flags().StringVar(&f.scheme, "scheme", def.Scheme, "scoring scheme (arpabet|basic)")
	cmd.Flags().Float64Var(&f.gap, "gap", def.Gap(), "gap penalty, added per gap (basic default: -2)")
	cmd.Flags().Float64Var(&f.match, "match", def.Match, "match score (basic scheme)")
	cmd.Flags().Float64Var(&f.mismatch, "mismatch", def.Mismatch, "mismatch score (basic scheme)")
	cmd.Flags().StringVar(&f.gapSymbol, "gap-symbol", def.GapSymbol, "gap token")
	cmd.Flags().StringVar(&f.mapping, "mapping", "", "attribute mapping file (arpabet scheme)")
}

// apply copies every explicitly set flag into cfg.
func (f *scoringFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("scheme") {
		cfg.Scheme = f.scheme
	}
	if fs.Changed("gap") {
		cfg.SetGap(f.gap)
	}
	if fs.Changed("match") {
		cfg.Match = f.match
	}
	if fs.Changed("mismatch") {
		cfg.Mismatch = f.mismatch
	}
	if fs.Changed("gap-symbol") {
		cfg.GapSymbol = f.gapSymbol
	}
	if fs.Changed("mapping") {
		cfg.Mapping = f.mapping
	}
}

// tokens splits a whitespace-separated sequence, optionally normalising
// every label.
func tokens(s string, normalize bool) []string {
	if normalize {
		return arpabet.NormalizeAll(strings.Fields(s))
	}
	return strings.Fields(s)
}
