package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/Brono25/cacoepy/mdd"
	"github.com/Brono25/cacoepy/pretty"
)

// ErrEmptyCorpus is returned for a corpus file without utterances.
var ErrEmptyCorpus = errors.New("corpus has no utterances")

// Phonemes is a phoneme sequence in a corpus file: either a YAML list or a
// whitespace-separated string.
type Phonemes []string

// UnmarshalYAML accepts both "a b c" and [a, b, c].
func (p *Phonemes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*p = strings.Fields(s)
		return nil
	}

	var seq []string
	if err := node.Decode(&seq); err != nil {
		return err
	}
	*p = seq
	return nil
}

// Utterance is one annotated corpus entry.
type Utterance struct {
	Words      string   `yaml:"words"`
	Target     Phonemes `yaml:"target_phonemes"`
	Perceived  Phonemes `yaml:"perceived_phonemes"`
	Prediction Phonemes `yaml:"predicted_phonemes"`
}

// Corpus maps utterance IDs to entries.
type Corpus map[string]Utterance

// IDs returns the utterance IDs in sorted order.
func (c Corpus) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadCorpus decodes a JSON or YAML corpus.
func LoadCorpus(r io.Reader) (Corpus, error) {
	var c Corpus
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCorpus
		}
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	if len(c) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// UtteranceReport is the evaluation of one utterance.
type UtteranceReport struct {
	ID        string         `json:"id"`
	Alignment *mdd.Alignment `json:"alignment"`
	Report    *mdd.Report    `json:"report"`
}

// SkippedUtterance records an utterance that could not be evaluated.
type SkippedUtterance struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// EvaluateResult is the JSON payload of the evaluate command.
type EvaluateResult struct {
	Utterances []UtteranceReport  `json:"utterances"`
	Skipped    []SkippedUtterance `json:"skipped,omitempty"`
	Total      *mdd.Report        `json:"total"`
}

type evaluateFlags struct {
	scoring   scoringFlags
	realign   bool
	normalize bool
	details   bool
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &evaluateFlags{}

	cmd := &cobra.Command{
		Use:   "evaluate <corpus>",
		Short: "Score mispronunciation predictions against an annotated corpus",
		Long: `Evaluate mispronunciation detection and diagnosis over a corpus.

The corpus is a JSON or YAML object keyed by utterance ID; each entry has
target_phonemes (canonical), perceived_phonemes (annotation) and
predicted_phonemes (model output). Target and perceived phonemes are
expected to be aligned to each other; --realign aligns all three from
scratch instead. Utterances that cannot be aligned are skipped.`,
		Example: `  cacoepy evaluate corpus.json
  cacoepy evaluate --realign --details --format json corpus.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(rootOpts, flags, args[0], cmd)
		},
	}

	addScoringFlags(cmd, &flags.scoring)
	cmd.Flags().BoolVar(&flags.realign, "realign", false, "align target, annotation and prediction from scratch")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "normalise raw phone labels (case, stress digits, ax)")
	cmd.Flags().BoolVar(&flags.details, "details", false, "print per-utterance alignments and reports")

	return cmd
}

func runEvaluate(opts *RootOptions, flags *evaluateFlags, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := opts.log()

	cfg, err := opts.loadConfig(cmd, &flags.scoring)
	if err != nil {
		return err
	}
	al, err := cfg.Aligner()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build aligner", err)
	}

	corpus, err := loadCorpusFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load corpus", err)
	}

	align := mdd.AlignPrediction
	if flags.realign {
		align = mdd.AlignTriple
	}

	result := EvaluateResult{Utterances: []UtteranceReport{}, Total: &mdd.Report{}}
	for _, id := range corpus.IDs() {
		u := corpus[id]
		ur, err := evaluateUtterance(id, u, al, align, flags.normalize)
		if err != nil {
			log.Warn("skipping utterance", "id", id, "error", err)
			result.Skipped = append(result.Skipped, SkippedUtterance{ID: id, Reason: err.Error()})
			continue
		}
		log.Debug("evaluated utterance", "id", id, "len", ur.Alignment.Len(),
			"true_rejection", ur.Report.TrueRejection, "false_rejection", ur.Report.FalseRejection)

		result.Utterances = append(result.Utterances, *ur)
		result.Total.Add(ur.Report)
	}

	if len(result.Utterances) == 0 {
		return WrapExitError(ExitFailure, "no utterance could be evaluated",
			fmt.Errorf("%d skipped", len(result.Skipped)))
	}

	return formatter.Success(formatEvaluate(result, flags.details), result)
}

func loadCorpusFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

type tripleAligner func(target, annotation, prediction []string, al mdd.Aligner) (*mdd.Alignment, error)

func evaluateUtterance(id string, u Utterance, al *arpabet.Aligner, align tripleAligner, normalize bool) (*UtteranceReport, error) {
	target, perceived, predicted := []string(u.Target), []string(u.Perceived), []string(u.Prediction)
	if normalize {
		target = normalizeKeepGaps(target, al.GapSymbol())
		perceived = normalizeKeepGaps(perceived, al.GapSymbol())
		predicted = normalizeKeepGaps(predicted, al.GapSymbol())
	}
	if len(perceived) == 0 {
		return nil, errors.New("no perceived phonemes")
	}

	a, err := align(target, perceived, predicted, al)
	if err != nil {
		return nil, err
	}
	rep, err := a.Evaluate()
	if err != nil {
		return nil, err
	}

	return &UtteranceReport{ID: id, Alignment: a, Report: rep}, nil
}

// normalizeKeepGaps normalises every label except the gap symbol.
func normalizeKeepGaps(seq []string, gap string) []string {
	out := make([]string, len(seq))
	for i, tok := range seq {
		if tok == gap {
			out[i] = tok
			continue
		}
		out[i] = arpabet.Normalize(tok)
	}
	return out
}

// formatEvaluate renders the text output of evaluate.
func formatEvaluate(r EvaluateResult, details bool) string {
	var sb strings.Builder
	if details {
		for _, u := range r.Utterances {
			fmt.Fprintf(&sb, "== %s\n", u.ID)
			sb.WriteString(pretty.Labeled(
				[]string{"target", "annotation", "prediction"},
				u.Alignment.Target, u.Alignment.Annotation, u.Alignment.Prediction,
			))
			writeReport(&sb, u.Report)
			sb.WriteString("\n")
		}
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(&sb, "skipped %s: %s\n", s.ID, s.Reason)
	}

	fmt.Fprintf(&sb, "utterances: %d evaluated, %d skipped\n", len(r.Utterances), len(r.Skipped))
	writeReport(&sb, r.Total)
	return sb.String()
}

func writeReport(w io.Writer, r *mdd.Report) {
	fmt.Fprintf(w, "TA %d  FR %d  FA %d  TR %d (CD %d, DE %d)\n",
		r.TrueAcceptance, r.FalseRejection, r.FalseAcceptance, r.TrueRejection,
		r.CorrectlyDiagnosed, r.DiagnosisError)
	fmt.Fprintf(w, "FAR %.4f  FRR %.4f  DER %.4f\n",
		r.FalseAcceptanceRate, r.FalseRejectionRate, r.DiagnosticErrorRate)
	fmt.Fprintf(w, "precision %.4f  recall %.4f  F1 %.4f\n", r.Precision, r.Recall, r.F1)
}
