package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

func newSubmitCmd(a *app) *cobra.Command {
	var (
		name, email, answers string
		qol                  int
		consent              bool
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a completed questionnaire without the interactive form",
		Long: `Fills in the form from flags and submits it once.

Example:
  ipss submit --name "Jo Smith" --email jo@example.com --answers 2,1,0,3,2,1,4 --qol 5 --consent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			form, closeForm, err := a.newForm(cmd.Context())
			if err != nil {
				return err
			}
			defer closeForm()

			form.SetName(name)
			form.SetEmail(email)
			for i, v := range values {
				if err := form.SetAnswer(services.Questions[i].Key, v); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("qol") {
				form.SetQualityOfLife(qol)
				if form.QualityOfLifeAdvisory() {
					fmt.Fprintf(a.out, "note: quality of life %d is outside 0–6\n", qol)
				}
			}
			form.SetConsent(consent)

			total := form.Total()
			fmt.Fprintf(a.out, "Total: %d (%s)\n", total, services.TierFor(total).Label(a.cfg.Locale))

			res, err := form.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "✓", res.Message)
			fmt.Fprintln(a.out, services.TierFor(res.Total).Advice(a.cfg.Locale))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Your full name")
	f.StringVar(&email, "email", "", "Your email address")
	f.StringVar(&answers, "answers", "", "Seven comma-separated answers, each 0–5, in question order")
	f.IntVar(&qol, "qol", 0, "Quality of life, 0–6 (optional)")
	f.BoolVar(&consent, "consent", false, "Consent to share these responses")
	return cmd
}

// parseAnswers reads up to seven comma-separated severities in question order.
func parseAnswers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > len(services.Questions) {
		return nil, fmt.Errorf("expected at most %d answers, got %d", len(services.Questions), len(parts))
	}
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		if !services.ValidSeverity(v) {
			return nil, errors.New("answers must be between 0 and 5")
		}
		out = append(out, v)
	}
	return out, nil
}
