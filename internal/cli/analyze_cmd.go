package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a goal description once and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			result, err := app.Analysis.ForceAnalyze(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("analyzing text: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalysisResult(result))
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatQuality(
				app.Analysis.QualityAssessment(app.Analysis.SelectedCategories())))

			if noSave || app.Logs == nil {
				return nil
			}
			log := &repository.AnalysisLog{
				ID:          uuid.NewString(),
				Text:        result.Text,
				Confidence:  result.Confidence,
				Matches:     len(result.Matches),
				Suggestions: result.Suggestions,
				LatencyMs:   result.Latency.Milliseconds(),
				CreatedAt:   time.Now().UTC(),
			}
			if err := app.Logs.Create(cmd.Context(), log); err != nil {
				return fmt.Errorf("recording analysis: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the analysis in history")
	return cmd
}
