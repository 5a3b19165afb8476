package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/seed"
)

func newSummaryCommand() *cobra.Command {
	var (
		file string
		goal int
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print weekly totals, goal progress, chart series and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := seed.Records(file)
			if err != nil {
				return err
			}
			store, err := domain.NewStore(domain.WithSeed(records))
			if err != nil {
				return fmt.Errorf("load workouts: %w", err)
			}
			service, err := domain.NewService(store, goal)
			if err != nil {
				return err
			}
			summary, err := service.Summary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, summary)
			printChart(out, service.Chart())
			printRecent(out, service.RecentWorkouts())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[workout]] entries (defaults to the sample workouts)")
	cmd.Flags().IntVarP(&goal, "goal", "g", 300, "weekly goal in minutes")
	return cmd
}

func printSummary(w io.Writer, s domain.Summary) {
	title := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen)

	title.Fprintln(w, "Weekly activity")
	fmt.Fprintf(w, "  Minutes:     %s / %d min goal (%.0f%%)\n", value.Sprint(s.TotalDuration), s.WeeklyGoalMinutes, s.GoalProgress)
	fmt.Fprintf(w, "  Calories:    %s kcal\n", value.Sprint(groupThousands(s.TotalCalories)))
	fmt.Fprintf(w, "  Steps:       %s\n", value.Sprint(groupThousands(s.TotalSteps)))
	fmt.Fprintf(w, "  Active days: %s / %d\n", value.Sprint(s.ActiveDays), s.DaysPerWeek)
}

func printChart(w io.Writer, points []domain.ChartPoint) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, "Chart")
	for _, p := range points {
		fmt.Fprintf(w, "  %-7s %4d min %6s kcal\n", p.Label, p.Duration, groupThousands(p.Calories))
	}
}

func printRecent(w io.Writer, records []domain.Workout) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, "Recent activity")
	for _, r := range records {
		steps := "N/A"
		if r.Steps != nil {
			steps = groupThousands(*r.Steps)
		}
		fmt.Fprintf(w, "  %-7s %-8s %4d min %6s kcal %8s steps\n",
			domain.FormatDateLabel(r.Date), r.Type, r.Duration, groupThousands(r.Calories), steps)
	}
}

var printer = message.NewPrinter(language.English)

// groupThousands formats n with comma separators, e.g. 4500 -> "4,500".
func groupThousands(n int) string {
	return printer.Sprintf("%d", n)
}
