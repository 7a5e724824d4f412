package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/materializer/internal/app"
	"github.com/footprint-tools/materializer/internal/argv"
	"github.com/footprint-tools/materializer/internal/cli"
	"github.com/footprint-tools/materializer/internal/dispatchers"
	"github.com/footprint-tools/materializer/internal/ui/style"
	"github.com/footprint-tools/materializer/internal/usage"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	tokens := argv.Parse(args)

	opts, err := app.DefaultOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	opts.IsTerminal = term.IsTerminal(int(os.Stdout.Fd()))
	applyGlobalFlags(&opts, tokens)

	application := app.New(opts)
	defer func() { _ = app.Close(application) }()

	if application.LoadErr != nil {
		application.Output.ErrPrintln(style.Warning(
			fmt.Sprintf("ignoring %s: %v", application.Config.Path(), application.LoadErr)))
	}

	a, err := dispatchers.NewApp(cli.BuildApp(application), dispatchers.WithOutput(application.Output))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = a.RunAsync(ctx, tokens).Await()
	return exitCode(err)
}

// applyGlobalFlags copies the output flags into opts. The tokenizer turns
// --no-color and --no-pager into color=false and pager=false.
func applyGlobalFlags(opts *app.Options, tokens argv.Tokens) {
	if color, ok := tokens.Options["color"]; ok && color.IsBool() {
		opts.NoColor = !color.Flag()
		opts.ForceColor = color.Flag()
	}

	pager, ok := tokens.Options["pager"]
	switch {
	case !ok:
	case pager.IsBool():
		opts.PagerDisabled = !pager.Flag()
	case pager.Text() != "":
		opts.PagerOverride = pager.Text()
	}
}

// exitCode maps a dispatch error to the process exit status. Diagnostics
// have already been printed by the dispatcher.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ue, ok := usage.As(err); ok {
		return ue.GetExitCode()
	}
	return 1
}
