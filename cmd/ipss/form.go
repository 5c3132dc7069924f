package main

import (
	"github.com/spf13/cobra"

	"github.com/soaringjerry/ipss-selfcheck/internal/tui"
)

func (a *app) runForm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	form, closeForm, err := a.newForm(ctx)
	if err != nil {
		return err
	}
	defer closeForm()
	return tui.Run(ctx, form, a.cfg.Locale)
}
