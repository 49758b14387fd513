package commands

import (
	"fmt"
	"text/tabwriter"
)

// TasksCmd implements the 'tasks' command.
type TasksCmd struct{}

func (t *TasksCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	env := NewEnv(cfg, g.Logger, g.EnvOptions...)
	defer func() { _ = env.Close() }()

	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	for _, task := range env.Runner.Tasks() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", task.Name, task.Description)
	}
	return tw.Flush()
}
