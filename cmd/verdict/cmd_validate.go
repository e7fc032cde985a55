package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/engine"
	"github.com/quizkit/verdict/internal/match"
)

type validateFlags struct {
	configPath string

	primary          string
	alternates       []string
	promptForMore    []string
	phoneticVariants []string
	answerType       string

	answersPath string
	question    string

	strictness string
	jsonOutput bool
}

func newValidateCommand() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate [flags] CANDIDATE...",
		Short: "Validate a candidate answer against an expected answer",
		Long: `Validate runs one candidate through the tier chain and prints the result.

The expected answer comes either from --answer (with optional --alternates
and friends) or from a question in an answer pack file:

  verdict validate --answer "Mississippi" --type place "Missisipi"
  verdict validate --answers pack.yaml --question q101 "the big muddy"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Engine config file (defaults to built-in tunables)")
	cmd.Flags().StringVar(&flags.primary, "answer", "", "Primary expected answer")
	cmd.Flags().StringSliceVar(&flags.alternates, "alternates", nil, "Fully acceptable alternate answers")
	cmd.Flags().StringSliceVar(&flags.promptForMore, "prompt-for-more", nil, "Answers considered too vague to accept")
	cmd.Flags().StringSliceVar(&flags.phoneticVariants, "phonetic-variants", nil, "Precomputed phonetic spellings")
	cmd.Flags().StringVar(&flags.answerType, "type", string(answer.TypeThing), "Answer type (person, place, thing, concept, number, date, title, scientific)")
	cmd.Flags().StringVar(&flags.answersPath, "answers", "", "Answer pack file")
	cmd.Flags().StringVar(&flags.question, "question", "", "Question key inside the answer pack")
	cmd.Flags().StringVar(&flags.strictness, "strictness", string(match.StrictnessStandard), "Strictness level (strict, standard, lenient)")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print the full result as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, flags validateFlags, candidate string) error {
	spec, err := resolveAnswer(flags)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	validator, detector, closeAll, err := buildEngine(cfg, credentialsFromEnv())
	if err != nil {
		return err
	}
	defer closeAll(cmd.Context())

	res, err := validator.Validate(cmd.Context(), match.Request{
		CandidateText: candidate,
		Answer:        spec,
		Strictness:    match.Strictness(flags.strictness),
		Capability:    detector.Detect(),
	})
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (confidence %.2f, tier %d)\n",
			res.Type, engine.Explain(res), res.Confidence, res.TierUsed)
	}

	if !res.Accepted() {
		return &CheckFailureError{Message: fmt.Sprintf("answer %q was not accepted", candidate)}
	}
	return nil
}

func resolveAnswer(flags validateFlags) (*answer.Spec, error) {
	if flags.answersPath != "" {
		if flags.primary != "" {
			return nil, fmt.Errorf("--answer and --answers are mutually exclusive")
		}
		if flags.question == "" {
			return nil, fmt.Errorf("--answers requires --question")
		}
		pack, err := answer.LoadPack(flags.answersPath)
		if err != nil {
			return nil, err
		}
		spec, ok := pack.Answers[flags.question]
		if !ok {
			return nil, fmt.Errorf("question %q not found in %s", flags.question, flags.answersPath)
		}
		return spec, nil
	}

	if flags.primary == "" {
		return nil, fmt.Errorf("either --answer or --answers/--question is required")
	}
	return answer.New(flags.primary, answer.Type(flags.answerType),
		answer.WithAlternates(flags.alternates...),
		answer.WithPromptForMore(flags.promptForMore...),
		answer.WithPhoneticVariants(flags.phoneticVariants...))
}
