package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/kadanebench/cmd/kadanebench/commands"
	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/version"
)

func main() {
	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("kadanebench"),
		kong.Description("Benchmark harness for Kadane's maximum subarray algorithm"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	g := &commands.Global{Ctx: ctx, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	err := kctx.Run(g, &cli)
	stop()
	if err != nil {
		os.Exit(errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
	}
}
