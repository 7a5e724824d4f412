package cli

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/materializer/internal/app"
	"github.com/footprint-tools/materializer/internal/argv"
	"github.com/footprint-tools/materializer/internal/config"
	"github.com/footprint-tools/materializer/internal/dispatchers"
	"github.com/footprint-tools/materializer/internal/material"
	"github.com/footprint-tools/materializer/internal/ui"
	"github.com/footprint-tools/materializer/internal/usage"
)

func testApp(t *testing.T) (*dispatchers.App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	writer := ui.NewWriterTo(&out, &errOut, ui.WithPagerDisabled())
	application := &app.Application{
		Config: config.NewProvider(filepath.Join(t.TempDir(), ".materializerrc")),
		Values: config.Defaults(),
		Output: writer,
	}

	a, err := dispatchers.NewApp(BuildApp(application), dispatchers.WithOutput(writer))
	require.NoError(t, err)
	return a, &out, &errOut
}

type result struct {
	value  any
	err    error
	out    string
	errOut string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	a, out, errOut := testApp(t)
	value, err := a.RunAsync(t.Context(), argv.Parse(args)).Await()
	return result{value: value, err: err, out: out.String(), errOut: errOut.String()}
}

func TestBuildApp_IsValid(t *testing.T) {
	a, _, _ := testApp(t)
	require.Equal(t, Name, a.Name())
	require.Equal(t, app.Version, a.Version())
}

func TestBuildApp_HasExpectedCommands(t *testing.T) {
	spec := BuildApp(&app.Application{Config: config.NewProvider("unused"), Values: config.Defaults(), Output: ui.NewWriter()})

	for _, cmd := range []string{"lookup", "palette", "config", "keys", "themes"} {
		_, found := spec.Commands[cmd]
		require.True(t, found, "expected command '%s' not found", cmd)
	}
}

func TestLookup_MultipleInputsInOrder(t *testing.T) {
	r := run(t, "lookup", "--format=hex", "f44336", "#000", "fff")

	require.NoError(t, r.err)
	require.Equal(t, "#f44336\n#000000\n#ffffff\n", r.out)

	results, ok := r.value.([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	require.Equal(t, "Red 500", results[0].(material.Color).Name)
	require.Equal(t, "White", results[2].(material.Color).Name)
}

func TestLookup_Aliases(t *testing.T) {
	r := run(t, "lookup", "-f=rgb", "-m=lab", "2196f3")

	require.NoError(t, r.err)
	require.Equal(t, "rgb(33,150,243)\n", r.out)
}

func TestLookup_LongFormBeatsAlias(t *testing.T) {
	r := run(t, "lookup", "-f=rgb", "--format=hex", "2196f3")

	require.NoError(t, r.err)
	require.Equal(t, "#2196f3\n", r.out)
}

func TestGlobalOutputFlagsPassValidation(t *testing.T) {
	r := run(t, "lookup", "--no-color", "--no-pager", "--format=hex", "fff")
	require.NoError(t, r.err)
	require.Equal(t, "#ffffff\n", r.out)

	r = run(t, "palette", "--color", "--pager=cat", "-g=brown")
	require.NoError(t, r.err)
}

func TestLookup_MissingInput(t *testing.T) {
	r := run(t, "lookup")

	ue, ok := usage.As(r.err)
	require.True(t, ok)
	require.Equal(t, usage.ErrMissingInput, ue.Kind)
	require.Contains(t, r.errOut, "Missing input argument")
	require.Contains(t, r.out, "Usage: materializer lookup [options] <input> [...input]")
}

func TestLookup_InvalidColorIsHandlerError(t *testing.T) {
	r := run(t, "lookup", "chartreuse-ish")

	require.ErrorIs(t, r.err, material.ErrInvalidColor)
	require.False(t, usage.IsArgumentError(r.err))
	require.Contains(t, r.errOut, `invalid color "chartreuse-ish"`)
}

func TestLookup_FormatNeedsValue(t *testing.T) {
	r := run(t, "lookup", "--format", "fff")

	ue, ok := usage.As(r.err)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidValue, ue.Kind)
	require.Contains(t, r.errOut, `Invalid value for option "format"`)
}

func TestPalette_UnknownOption(t *testing.T) {
	r := run(t, "palette", "--swatch")

	ue, ok := usage.As(r.err)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidOption, ue.Kind)
	require.Contains(t, r.errOut, `Invalid option: "swatch"`)
}

func TestPalette_Group(t *testing.T) {
	r := run(t, "palette", "-g=brown")

	require.NoError(t, r.err)
	require.Len(t, r.value, 10)
	require.Contains(t, r.out, "Brown 500")
	require.NotContains(t, r.out, "Red")
}

func TestConfig_SetThenGet(t *testing.T) {
	t.Setenv("MATERIALIZER_PAGER", "")
	a, out, _ := testApp(t)

	_, err := a.Run(t.Context(), argv.Parse([]string{"config", "pager", "--set=cat"}))
	require.NoError(t, err)

	value, err := a.Run(t.Context(), argv.Parse([]string{"config", "pager"}))
	require.NoError(t, err)
	require.Equal(t, "cat", value)
	require.Equal(t, "pager=cat\ncat\n", out.String())
}

func TestUnknownCommand_Suggests(t *testing.T) {
	r := run(t, "lokup", "fff")

	ue, ok := usage.As(r.err)
	require.True(t, ok)
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.True(t, slices.Contains(ue.Suggestions, "lookup"))
	require.Contains(t, r.errOut, "Did you mean")
	require.Contains(t, r.out, "Commands:")
}

func TestHelpAndVersion(t *testing.T) {
	r := run(t)
	require.NoError(t, r.err)
	require.Contains(t, r.out, "Usage: materializer [command] [options]")

	r = run(t, "palette", "-h")
	require.NoError(t, r.err)
	require.Contains(t, r.out, "Usage: materializer palette [options]")
	require.Contains(t, r.out, "--group, -g")

	r = run(t, "palette", "--version")
	require.NoError(t, r.err)
	require.Equal(t, app.Version+"\n", r.out)
}
