package commands

// InteractiveCmd implements the 'interactive' command.
type InteractiveCmd struct{}

func (i *InteractiveCmd) Run(g *Global, root *CLI) error {
	return withApp(g, root, func(app *App) error {
		return app.Runner.Run(g.Ctx)
	})
}
