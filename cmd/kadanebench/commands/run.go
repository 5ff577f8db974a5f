package commands

import (
	"strings"

	"git.home.luguber.info/inful/kadanebench/internal/harness"
	"git.home.luguber.info/inful/kadanebench/internal/kadane"
)

// RunCmd implements the 'run' command.
type RunCmd struct {
	Values  []string `arg:"" optional:"" help:"Array elements; put -- before the first negative number"`
	Variant string   `short:"a" help:"Algorithm variant (standard|optimized)" default:"standard"`
}

func (r *RunCmd) Run(g *Global, root *CLI) error {
	v, err := kadane.ParseVariant(r.Variant)
	if err != nil {
		return err
	}
	seq, err := harness.ParseInts(strings.Join(r.Values, " "))
	if err != nil {
		return err
	}
	return withApp(g, root, func(app *App) error {
		_, err := app.Runner.RunVariant(v, seq, "Command Line Array")
		return err
	})
}
