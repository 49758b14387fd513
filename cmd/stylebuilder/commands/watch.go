package commands

import "git.home.luguber.info/inful/stylebuilder/internal/config"

// WatchCmd implements the 'watch' command. It blocks until interrupted.
type WatchCmd struct {
	Debounce string `help:"Override watch.debounce (e.g. 500ms)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	var overrides []func(*config.Config)
	if w.Debounce != "" {
		overrides = append(overrides, func(c *config.Config) { c.Watch.Debounce = w.Debounce })
	}
	return runTask(g, root, TaskWatch, overrides...)
}
