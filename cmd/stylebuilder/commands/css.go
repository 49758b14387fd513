package commands

// CSSCmd implements the 'css' command.
type CSSCmd struct{}

func (c *CSSCmd) Run(g *Global, root *CLI) error {
	return runTask(g, root, TaskCSS)
}
