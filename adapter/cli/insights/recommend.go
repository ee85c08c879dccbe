package insights

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

func newRecommendCmd() *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:     "recommend",
		Short:   "Suggest projects to do more of and to review",
		Aliases: []string{"rec"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}
			from, err := parseSince(since, time.Now())
			if err != nil {
				return err
			}

			recs, err := app.InsightsService.GetRecommendations(cmd.Context(), queries.GetRecommendationsQuery{Since: from})
			if err != nil {
				return fmt.Errorf("failed to compute recommendations: %w", err)
			}
			renderRecommendations(cmd.OutOrStdout(), recs)
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only sessions since a date (YYYY-MM-DD) or day count (30d)")
	return cmd
}

func renderRecommendations(w io.Writer, recs domain.Recommendations) {
	if recs.IsEmpty() {
		fmt.Fprintln(w, "Not enough feedback yet. Projects need at least a couple of rated sessions.")
		return
	}

	if len(recs.TryMoreOf) > 0 {
		fmt.Fprintln(w, cli.SuccessStyle.Render("Try more of"))
		for _, s := range recs.TryMoreOf {
			fmt.Fprintf(w, "  + %s\n", s)
		}
	}
	if len(recs.Review) > 0 {
		fmt.Fprintln(w, cli.WarningStyle.Render("Review"))
		for _, s := range recs.Review {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	renderItems(w, "Highest yes-rate", recs.Top)
	renderItems(w, "Lowest yes-rate", recs.Bottom)
}

func renderItems(w io.Writer, title string, items []domain.RecommendationItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.TitleStyle.Render(title))
	for _, it := range items {
		fmt.Fprintf(w, "  %-20s %s  %s\n", it.Title, cli.Percent(it.Rate*100), cli.LabelStyle.Render(it.Detail))
	}
}
