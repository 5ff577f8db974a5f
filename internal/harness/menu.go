package harness

import (
	"context"
	stdErrors "errors"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
)

// Menu choices.
const (
	ChoiceCustomArray = 1
	ChoiceRandomArray = 2
	ChoiceComparison  = 3
	ChoiceEdgeCases   = 4
	ChoiceSweep       = 5
	ChoiceViewResults = 6
	ChoiceExportCSV   = 7
	ChoiceReport      = 8
	ChoiceHistory     = 9
	ChoiceExit        = 10
)

var menuItems = []string{
	"1. Test with custom array",
	"2. Test with random array",
	"3. Performance comparison",
	"4. Run edge case tests",
	"5. Run comprehensive benchmark",
	"6. View benchmark results",
	"7. Export results to CSV",
	"8. Generate full report",
	"9. Show run history",
	"10. Exit",
}

// Run drives the menu until the user exits, input ends or ctx is done.
// Errors from individual commands are reported and never end the loop.
func (r *Runner) Run(ctx context.Context) error {
	r.con.Title("Kadane's Algorithm Benchmark")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		r.displayMenu()
		line, err := r.readLine()
		switch {
		case stdErrors.Is(err, io.EOF):
			r.con.Println()
			return nil
		case errors.IsCategory(err, errors.CategoryInput):
			r.report(err)
		case err != nil:
			return errors.InternalError("failed to read input", err)
		default:
			if !r.Dispatch(ctx, parseChoice(line)) {
				return nil
			}
		}

		r.con.Println()
		r.con.Println("Press Enter to continue...")
		if _, err := r.readLine(); err != nil && !errors.IsCategory(err, errors.CategoryInput) {
			return endOfInput(err)
		}
	}
}

func (r *Runner) displayMenu() {
	r.con.Println("Choose an option:")
	for _, item := range menuItems {
		r.con.Println(item)
	}
	r.con.Printf("Enter your choice (1-10): ")
}

// Dispatch runs one menu choice and reports whether the loop should continue.
func (r *Runner) Dispatch(ctx context.Context, choice int) bool {
	r.logger.Debug("Dispatching menu choice", slog.Int("choice", choice))

	switch choice {
	case ChoiceCustomArray:
		r.report(r.promptCustomArray())
	case ChoiceRandomArray:
		r.report(r.promptRandomArray())
	case ChoiceComparison:
		r.Comparison()
	case ChoiceEdgeCases:
		r.EdgeCases()
	case ChoiceSweep:
		r.Sweep()
	case ChoiceViewResults:
		r.ViewResults()
	case ChoiceExportCSV:
		_, err := r.ExportCSV()
		r.report(err)
	case ChoiceReport:
		r.report(r.FullReport())
	case ChoiceHistory:
		r.report(r.History(ctx, 20))
	case ChoiceExit:
		return false
	default:
		r.con.Error("Invalid choice. Please try again.")
	}
	return true
}
