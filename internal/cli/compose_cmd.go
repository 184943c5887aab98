package cli

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newComposeCmd(app *App) *cobra.Command {
	var skipSetup bool

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Write a goal description with live suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("compose requires an interactive terminal")
			}

			if !skipSetup {
				selected, err := runSetupForm()
				if err != nil {
					return err
				}
				app.Analysis.SetSelectedCategories(selected)
			}

			model := newComposeModel(app)
			p := tea.NewProgram(model, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running compose session: %w", err)
			}

			if m, ok := final.(composeModel); ok && m.savedLog != nil {
				if err := app.Logs.Create(cmd.Context(), m.savedLog); err != nil {
					return fmt.Errorf("recording analysis: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved to history.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSetup, "skip-setup", false, "skip the initial category form")
	return cmd
}

// runSetupForm asks which details the user has already decided, seeding the
// selected-category set so those suggestions are not shown again.
func runSetupForm() ([]domain.Category, error) {
	var selected []domain.Category

	options := make([]huh.Option[domain.Category], 0)
	for _, spec := range domain.Catalog() {
		options = append(options, huh.NewOption(spec.Label, spec.Category))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[domain.Category]().
				Title("Which details have you already decided?").
				Description("Decided details are skipped when suggesting.").
				Options(options...).
				Value(&selected),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running setup form: %w", err)
	}
	return selected, nil
}
