package dispatchers

import (
	"strconv"

	"github.com/footprint-tools/materializer/internal/argv"
)

// Options provides typed access to validated, alias-expanded options.
type Options map[string]argv.Value

// Has returns true if the option is present with any value.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Bool returns true if the option was given as a set flag.
func (o Options) Bool(name string) bool {
	return o[name].Flag()
}

// String returns the textual value of an option, or defaultVal if not present
// or not textual.
func (o Options) String(name, defaultVal string) string {
	v, ok := o[name]
	if !ok || !v.IsText() || v.Text() == "" {
		return defaultVal
	}
	return v.Text()
}

// Int returns the integer value of an option, or defaultVal if not present or invalid.
func (o Options) Int(name string, defaultVal int) int {
	str := o.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
