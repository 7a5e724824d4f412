package dispatchers

import (
	"context"
	"fmt"

	"github.com/footprint-tools/materializer/internal/argv"
	"github.com/footprint-tools/materializer/internal/log"
	"github.com/footprint-tools/materializer/internal/ui/style"
	"github.com/footprint-tools/materializer/internal/usage"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultSuggestionsCount = 3

// Mode selects how handler results are treated.
type Mode int

const (
	// ModeSync returns handler results as they are, Deferred values included.
	ModeSync Mode = iota
	// ModeAsync awaits Deferred handler results before reporting.
	ModeAsync
)

func (m Mode) String() string {
	if m == ModeAsync {
		return "async"
	}
	return "sync"
}

// invocation is built once per run from the tokenizer output.
type invocation struct {
	id      string
	command string
	inputs  []string
	raw     map[string]argv.Value
}

// outcome is what both execution modes produce. report is the only
// consumer.
type outcome struct {
	invocation string
	command    string
	value      any
	err        error
}

// Run dispatches tokens synchronously. Argument errors are reported with
// help, other errors with a full trace; either way the error is returned.
// Help and version requests return (nil, nil).
func (a *App) Run(ctx context.Context, tokens argv.Tokens) (any, error) {
	return a.report(a.execute(ctx, tokens, ModeSync))
}

// RunAsync dispatches tokens in asynchronous mode. The returned Future
// settles after the handler's Deferred result (if any) settles and the
// outcome has been reported.
func (a *App) RunAsync(ctx context.Context, tokens argv.Tokens) *Future {
	f := newFuture()
	go func() {
		f.settle(a.report(a.execute(ctx, tokens, ModeAsync)))
	}()
	return f
}

func (a *App) parse(tokens argv.Tokens) invocation {
	inv := invocation{
		id:     uuid.NewString(),
		inputs: tokens.Positional,
		raw:    tokens.Options,
	}
	if a.subcommandMode() && len(inv.inputs) > 0 {
		inv.command = inv.inputs[0]
		inv.inputs = inv.inputs[1:]
	}
	return inv
}

func (a *App) execute(ctx context.Context, tokens argv.Tokens, mode Mode) outcome {
	inv := a.parse(tokens)
	log.Debug("dispatch: invocation %s mode=%s command=%q inputs=%d options=%d",
		inv.id, mode, inv.command, len(inv.inputs), len(inv.raw))

	valid := a.hasCommand(inv.command)
	globals := ExpandAliases(a.spec.Options, inv.raw)

	// Help wins unless a command was named and does not exist, which is an
	// unknown-command error instead.
	showHelp := globals["help"].Truthy() || (inv.command == "" && !valid)
	notFound := inv.command != "" && !valid
	if showHelp && !notFound {
		if inv.command != "" {
			a.out.Pager(RenderCommandHelp(a.spec, inv.command))
		} else {
			a.out.Pager(RenderHelp(a.spec))
		}
		return outcome{invocation: inv.id, command: inv.command}
	}

	if globals["version"].Truthy() {
		a.out.Println(a.spec.Version)
		return outcome{invocation: inv.id, command: inv.command}
	}

	if notFound {
		suggestions := FindSimilarCommands(inv.command, a.spec.Commands, defaultSuggestionsCount)
		return outcome{
			invocation: inv.id,
			command:    inv.command,
			err:        usage.UnknownCommand(inv.command, suggestions...),
		}
	}

	cmd, _ := a.command(inv.command)
	allowed := a.allowedOptions(cmd)
	opts := ExpandAliases(allowed, inv.raw)

	if err := validateInput(cmd, inv.inputs); err != nil {
		return outcome{invocation: inv.id, command: inv.command, err: err}
	}
	if err := ValidateOptions(opts, allowed); err != nil {
		return outcome{invocation: inv.id, command: inv.command, err: err}
	}

	value, err := a.invoke(ctx, cmd, inv.inputs, opts, mode)
	return outcome{invocation: inv.id, command: inv.command, value: value, err: err}
}

func (a *App) invoke(ctx context.Context, cmd CommandSpec, inputs []string, opts Options, mode Mode) (any, error) {
	call := func(input string) (any, error) {
		value, err := callGuarded(func() (any, error) {
			return cmd.Run(ctx, input, opts)
		})
		if err != nil {
			return nil, err
		}
		if d, ok := value.(Deferred); ok && mode == ModeAsync {
			value, err = d.Await()
			if err != nil {
				return nil, withStack(err)
			}
		}
		return value, nil
	}

	switch arityOf(cmd) {
	case noInput:
		return call("")
	case singleInput:
		return call(inputs[0])
	default:
		results := make([]any, 0, len(inputs))
		for _, input := range inputs {
			value, err := call(input)
			if err != nil {
				return nil, err
			}
			results = append(results, value)
		}
		return results, nil
	}
}

// report writes diagnostics for a failed outcome and hands the error back.
// It never swallows an error.
func (a *App) report(o outcome) (any, error) {
	if o.err == nil {
		log.Debug("dispatch: invocation %s succeeded", o.invocation)
		return o.value, nil
	}

	if ue, ok := usage.As(o.err); ok {
		log.Debug("dispatch: invocation %s argument error (%s): %s", o.invocation, ue.Kind, ue.Message)
		a.out.ErrPrintln(style.Error(ue.Error()))
		if ue.Kind == usage.ErrUnknownCommand {
			a.out.Pager(RenderHelp(a.spec))
		} else {
			a.out.Pager(RenderCommandHelp(a.spec, o.command))
		}
		return nil, o.err
	}

	log.Error("dispatch: invocation %s command %q failed: %v", o.invocation, o.command, o.err)
	a.out.ErrPrintln(style.Error(fmt.Sprintf("%+v", o.err)))
	return nil, o.err
}

// callGuarded runs a handler, turning panics into errors and attaching a
// stack trace to handler failures.
func callGuarded(fn func() (any, error)) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = errors.Errorf("panic: %v", r)
		}
	}()

	value, err = fn()
	if err != nil {
		return nil, withStack(err)
	}
	return value, nil
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func withStack(err error) error {
	if usage.IsArgumentError(err) {
		return err
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return errors.WithStack(err)
}
