package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score [answers]",
		Short: "Score answers locally without submitting",
		Long: `Prints the running IPSS total and severity tier for up to seven answers.
Missing answers count as 0.

Example:
  ipss score 2,1,0,3,2,1,4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAnswers(args[0])
			if err != nil {
				return err
			}
			answers := services.AnswerSet{}
			for i, v := range values {
				answers[services.Questions[i].Key] = v
			}
			total := services.Total(answers)
			tier := services.TierFor(total)
			fmt.Fprintf(a.out, "Total: %d/%d\n", total, services.MaxTotal)
			fmt.Fprintf(a.out, "Tier: %s\n", tier.Label(a.cfg.Locale))
			if !answers.Complete() {
				fmt.Fprintf(a.out, "Answered %d of %d questions\n", len(answers), len(services.Questions))
			}
			return nil
		},
	}
}

func newQuestionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, q := range services.Questions {
				fmt.Fprintf(a.out, "%s  %s (%d–%d)\n", q.Key, q.Label, services.MinSeverity, services.MaxSeverity)
			}
			fmt.Fprintf(a.out, "qol Quality of life (%d–%d, optional)\n", services.MinQualityOfLife, services.MaxQualityOfLife)
			return nil
		},
	}
}
