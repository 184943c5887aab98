package cli

import (
	"github.com/alexanderramin/telos/internal/analysis"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need.
type App struct {
	Analysis analysis.Service
	Logs     repository.AnalysisLogRepo

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "telos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "telos",
		Short: "Goal-description analyzer and composer",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newComposeCmd(app),
		newVocabCmd(app),
		newHistoryCmd(app),
	)

	return root
}
