package argv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantPositional []string
		wantOptions    map[string]Value
	}{
		{
			name:           "no arguments",
			args:           []string{},
			wantPositional: []string{},
			wantOptions:    map[string]Value{},
		},
		{
			name:           "only positionals",
			args:           []string{"lookup", "f44336"},
			wantPositional: []string{"lookup", "f44336"},
			wantOptions:    map[string]Value{},
		},
		{
			name:           "bare long flag is true",
			args:           []string{"--help"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"help": Bool(true)},
		},
		{
			name:           "negated long flag is false",
			args:           []string{"--no-color"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"color": Bool(false)},
		},
		{
			name:           "long option with value",
			args:           []string{"convert", "--format=png", "photo.jpg"},
			wantPositional: []string{"convert", "photo.jpg"},
			wantOptions:    map[string]Value{"format": String("png")},
		},
		{
			name:           "empty value stays text",
			args:           []string{"--format="},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"format": String("")},
		},
		{
			name:           "value may contain equals",
			args:           []string{"--filter=a=b"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"filter": String("a=b")},
		},
		{
			name:           "bare flag does not consume next argument",
			args:           []string{"--format", "png"},
			wantPositional: []string{"png"},
			wantOptions:    map[string]Value{"format": Bool(true)},
		},
		{
			name:           "grouped short flags",
			args:           []string{"-vh"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"v": Bool(true), "h": Bool(true)},
		},
		{
			name:           "short option with value",
			args:           []string{"-f=json"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"f": String("json")},
		},
		{
			name:           "grouped short flags ending with value",
			args:           []string{"-sf=hex"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"s": Bool(true), "f": String("hex")},
		},
		{
			name:           "negative number is positional",
			args:           []string{"-5"},
			wantPositional: []string{"-5"},
			wantOptions:    map[string]Value{},
		},
		{
			name:           "single dash is positional",
			args:           []string{"-"},
			wantPositional: []string{"-"},
			wantOptions:    map[string]Value{},
		},
		{
			name:           "double dash ends options",
			args:           []string{"lookup", "--", "--help", "-v"},
			wantPositional: []string{"lookup", "--help", "-v"},
			wantOptions:    map[string]Value{},
		},
		{
			name:           "last occurrence wins",
			args:           []string{"--format=json", "--format=hex"},
			wantPositional: []string{},
			wantOptions:    map[string]Value{"format": String("hex")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.args)
			require.Equal(t, tt.wantPositional, got.Positional)
			require.Equal(t, tt.wantOptions, got.Options)
		})
	}
}

func TestTokens_Has(t *testing.T) {
	tokens := Parse([]string{"--no-pager"})
	require.True(t, tokens.Has("pager"))
	require.False(t, tokens.Has("help"))
}

func TestValue(t *testing.T) {
	require.True(t, Bool(true).Truthy())
	require.False(t, Bool(false).Truthy())
	require.True(t, String("x").Truthy())
	require.False(t, String("").Truthy())
	require.False(t, Value{}.Truthy())

	require.True(t, Bool(true).Flag())
	require.False(t, String("true").Flag())

	require.Equal(t, "true", Bool(true).Text())
	require.Equal(t, "png", String("png").Text())
	require.Equal(t, `"png"`, String("png").String())
	require.True(t, Value{}.IsText())
}
