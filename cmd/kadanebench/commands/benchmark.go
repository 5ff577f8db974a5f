package commands

import "git.home.luguber.info/inful/kadanebench/internal/logfields"

// EdgeCasesCmd implements the 'edge-cases' command.
type EdgeCasesCmd struct{}

func (e *EdgeCasesCmd) Run(g *Global, root *CLI) error {
	return withApp(g, root, func(app *App) error {
		app.Runner.EdgeCases()
		return nil
	})
}

// CompareCmd implements the 'compare' command.
type CompareCmd struct {
	Sizes []int `help:"Override comparison.sizes" sep:","`
	CSV   bool  `name:"csv" help:"Export the results to CSV afterwards"`
}

func (c *CompareCmd) Run(g *Global, root *CLI) error {
	return withApp(g, root, func(app *App) error {
		if len(c.Sizes) > 0 {
			app.Config.Comparison.Sizes = c.Sizes
			if err := app.Config.Validate(); err != nil {
				return err
			}
		}
		app.Runner.Comparison()
		if c.CSV {
			_, err := app.Runner.ExportCSV()
			return err
		}
		return nil
	})
}

// SweepCmd implements the 'sweep' command.
type SweepCmd struct {
	CSV    bool `name:"csv" help:"Export the results to CSV afterwards"`
	Report bool `help:"Write the CSV plus Markdown and HTML reports afterwards"`
}

func (s *SweepCmd) Run(g *Global, root *CLI) error {
	return withApp(g, root, func(app *App) error {
		n := app.Runner.Sweep()
		app.Logger.Debug("Sweep finished", logfields.Command("sweep"), logfields.Count(n))

		switch {
		case s.Report:
			return app.Runner.FullReport()
		case s.CSV:
			_, err := app.Runner.ExportCSV()
			return err
		}
		return nil
	})
}

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" help:"Number of runs to show" default:"20"`
}

func (h *HistoryCmd) Run(g *Global, root *CLI) error {
	return withApp(g, root, func(app *App) error {
		return app.Runner.History(g.Ctx, h.Limit)
	})
}
