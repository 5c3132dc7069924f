package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

// Run drives the form in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, form *services.FormController, locale string, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(ctx, form, locale), append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)...)
	// Send blocks while the event loop runs Update, so redraws are posted from a goroutine.
	unsubscribe := form.Subscribe(func(services.Snapshot) { go p.Send(redrawMsg{}) })
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
