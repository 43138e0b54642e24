package cli

import (
	"github.com/spf13/cobra"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/Brono25/cacoepy/matrix"
)

// SimilarityResult is the JSON payload of the similarity command.
type SimilarityResult struct {
	Phonemes []string             `json:"phonemes"`
	Scores   map[string][]float64 `json:"scores"` // row per phoneme, columns in Phonemes order
}

// NewSimilarityCommand creates the similarity command.
func NewSimilarityCommand(rootOpts *RootOptions) *cobra.Command {
	var mapping string

	cmd := &cobra.Command{
		Use:   "similarity [phoneme...]",
		Short: "Print the phoneme substitution table",
		Long: `Print the articulatory similarity table used by the arpabet scheme:
cosine similarity of attribute vectors, rescaled to [-10, 10].
Optional arguments restrict the table to those phonemes.`,
		Example: `  cacoepy similarity b p d t
  cacoepy similarity --mapping data/ARPAbet_mapping.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilarity(rootOpts, mapping, args, cmd)
		},
	}

	cmd.Flags().StringVar(&mapping, "mapping", "", "attribute mapping file (default: config mapping or built-in)")

	return cmd
}

func runSimilarity(opts *RootOptions, mappingPath string, phonemes []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := opts.loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if mappingPath != "" {
		cfg.Mapping = mappingPath
	}
	m, err := cfg.LoadMapping()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load mapping", err)
	}

	if len(phonemes) == 0 {
		phonemes = m.Symbols()
	} else if err := m.Vocabulary().Check(phonemes); err != nil {
		return WrapExitError(ExitFailure, "unknown phoneme", err)
	}

	table := arpabet.SimilarityTable(m)
	result := SimilarityResult{Phonemes: phonemes, Scores: make(map[string][]float64, len(phonemes))}
	for _, a := range phonemes {
		row := make([]float64, len(phonemes))
		for j, b := range phonemes {
			row[j] = table[a][b]
		}
		result.Scores[a] = row
	}

	text, err := matrix.Labeled(phonemes, phonemes, func(i, j int) string {
		return matrix.FormatValue(result.Scores[phonemes[i]][j])
	}, matrix.DefaultCellWidth)
	if err != nil {
		return err
	}

	return formatter.Success(text, result)
}
