package commands

import "git.home.luguber.info/inful/stylebuilder/internal/config"

// StyleguideCmd implements the 'styleguide' command.
type StyleguideCmd struct {
	Format string   `short:"f" help:"Override styleguide.format (yaml|json|text)"`
	Report string   `short:"o" help:"Write the aggregated report to this file instead of stdout"`
	Legacy bool     `help:"Report both unsupported-kind errors for stream inputs"`
	Source []string `arg:"" optional:"" help:"Glob patterns overriding styleguide.sources"`
}

func (s *StyleguideCmd) Run(g *Global, root *CLI) error {
	override := func(c *config.Config) {
		if s.Format != "" {
			c.Styleguide.Format = config.ReportFormat(s.Format)
		}
		if s.Report != "" {
			c.Styleguide.Report = s.Report
		}
		if s.Legacy {
			c.Styleguide.LegacyFallthrough = true
		}
		if len(s.Source) > 0 {
			c.Styleguide.Sources = s.Source
		}
	}
	return runTask(g, root, TaskStyleguide, override)
}
