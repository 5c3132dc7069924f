package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/soaringjerry/ipss-selfcheck/internal/db"
	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

func newJournalCmd(a *app) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the local journal of submit attempts",
	}
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent submit attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.ListAttempts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tOUTCOME\tTOTAL\tTIER\tREQUEST\tMESSAGE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
					r.At.Format(time.RFC3339), r.Outcome, r.Total, r.Tier, r.RequestID, r.Message)
			}
			return tw.Flush()
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum attempts to show (0 for all)")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Summarize journaled attempts by outcome, tier and day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			sum, err := services.NewJournalService(store).Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Attempts: %d (succeeded %d, failed %d) from %d email(s)\n",
				sum.Attempts, sum.Succeeded, sum.Failed, sum.Emails)
			fmt.Fprintf(a.out, "Mean accepted total: %.1f\n", sum.MeanTotal)
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, t := range sum.Tiers {
				fmt.Fprintf(tw, "%s\t%d\n", t.Tier.Label(a.cfg.Locale), t.Count)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			tw = tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tATTEMPTS\tSUCCEEDED")
			for _, d := range sum.Daily {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", d.Date, d.Attempts, d.Succeeded)
			}
			return tw.Flush()
		},
	}
	journalCmd.AddCommand(list, stats)
	return journalCmd
}

func (a *app) openJournal(cmd *cobra.Command) (*db.JournalStore, error) {
	if a.cfg.JournalPath == "" {
		return nil, errors.New("no journal configured (use --journal or IPSS_JOURNAL)")
	}
	return db.OpenJournal(cmd.Context(), a.cfg.JournalPath, a.logger)
}
