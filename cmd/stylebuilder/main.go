package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/stylebuilder/cmd/stylebuilder/commands"
	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("stylebuilder"),
		kong.Description("Compile Sass, watch sources and aggregate KSS style-guide documentation."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := parser.Run(&commands.Global{Ctx: ctx, Logger: slog.Default()}, cli)
	cancel()
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
