package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// ReadLines returns the raw lines of the config file at path. A missing
// file yields no lines and no error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initialLines documents every key with its default, commented out, so a
// fresh config file shows what can be set.
func initialLines() []string {
	lines := []string{
		"# materializer configuration",
		"# Edit values below or use: materializer config <key> --set=<value>",
		"",
	}

	for _, key := range Keys {
		lines = append(lines, "# "+key.Description)

		value := key.Default
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		lines = append(lines, "# "+key.Name+"="+value)
	}

	return lines
}
