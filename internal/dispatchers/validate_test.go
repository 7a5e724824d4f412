package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/materializer/internal/argv"
	"github.com/footprint-tools/materializer/internal/usage"
)

var validateAllowed = []OptionSpec{
	{Name: "format", Alias: "f", Type: TypeString, Required: true},
	{Name: "out", Alias: "o", Type: TypePath},
	{Name: "force", Type: TypeBoolean},
	{Name: "level", Type: TypeString | TypeBoolean},
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
		kind    usage.ErrorKind
	}{
		{
			name: "valid",
			opts: Options{"format": argv.String("png"), "out": argv.String("a.png"), "force": argv.Bool(true)},
		},
		{
			name:    "required absent",
			opts:    Options{},
			wantErr: `Missing option "format"`,
			kind:    usage.ErrMissingOption,
		},
		{
			name:    "required empty text",
			opts:    Options{"format": argv.String("")},
			wantErr: `Missing option "format"`,
			kind:    usage.ErrMissingOption,
		},
		{
			name:    "boolean given text",
			opts:    Options{"format": argv.String("png"), "force": argv.String("yes")},
			wantErr: `Invalid value for option "force"`,
			kind:    usage.ErrInvalidValue,
		},
		{
			name:    "path given flag",
			opts:    Options{"format": argv.String("png"), "out": argv.Bool(true)},
			wantErr: `Invalid value for option "out"`,
			kind:    usage.ErrInvalidValue,
		},
		{
			name: "falsy values skip the type check",
			opts: Options{"format": argv.String("png"), "out": argv.Bool(false)},
		},
		{
			name: "either type accepted",
			opts: Options{"format": argv.String("png"), "level": argv.Bool(true)},
		},
		{
			name:    "unknown key",
			opts:    Options{"format": argv.String("png"), "zzz": argv.Bool(true)},
			wantErr: `Invalid option: "zzz"`,
			kind:    usage.ErrInvalidOption,
		},
		{
			name:    "unknown keys reported in sorted order",
			opts:    Options{"format": argv.String("png"), "b": argv.Bool(true), "a": argv.Bool(true)},
			wantErr: `Invalid option: "a"`,
			kind:    usage.ErrInvalidOption,
		},
		{
			name:    "type check runs before unknown check",
			opts:    Options{"format": argv.Bool(true), "zzz": argv.Bool(true)},
			wantErr: `Invalid value for option "format"`,
			kind:    usage.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.opts, validateAllowed)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
			ue, ok := usage.As(err)
			require.True(t, ok)
			require.Equal(t, tt.kind, ue.Kind)
		})
	}
}

func TestExpandAliases(t *testing.T) {
	raw := map[string]argv.Value{
		"f":     argv.String("png"),
		"o":     argv.String("x.png"),
		"force": argv.Bool(true),
		"z":     argv.Bool(true),
	}

	got := ExpandAliases(validateAllowed, raw)

	require.Equal(t, Options{
		"format": argv.String("png"),
		"out":    argv.String("x.png"),
		"force":  argv.Bool(true),
		"z":      argv.Bool(true),
	}, got)
	require.Contains(t, raw, "f", "input map is not modified")
}

func TestExpandAliases_Idempotent(t *testing.T) {
	raw := map[string]argv.Value{"f": argv.String("png")}

	once := ExpandAliases(validateAllowed, raw)
	twice := ExpandAliases(validateAllowed, once)

	require.Equal(t, once, twice)
}

func TestExpandAliases_ShortEqualsLong(t *testing.T) {
	short := ExpandAliases(validateAllowed, map[string]argv.Value{"f": argv.String("png")})
	long := ExpandAliases(validateAllowed, map[string]argv.Value{"format": argv.String("png")})

	require.Equal(t, long, short)
}

func TestExpandAliases_CanonicalWinsOverAlias(t *testing.T) {
	raw := argv.Parse([]string{"-f=hex", "--format=json", "-o=a.png", "--out=b.png"}).Options

	for i := 0; i < 100; i++ {
		got := ExpandAliases(validateAllowed, raw)
		require.Equal(t, Options{
			"format": argv.String("json"),
			"out":    argv.String("b.png"),
		}, got)
	}
}
