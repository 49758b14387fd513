package commands

// DefaultCmd runs when no command is given: css and watch in parallel.
type DefaultCmd struct{}

func (d *DefaultCmd) Run(g *Global, root *CLI) error {
	return runTask(g, root, TaskDefault)
}
