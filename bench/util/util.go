// Package util holds small helpers shared by the benchmark binaries: report
// files in an output directory and logger construction.
package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const reportFile = "report.json"

// LoadReport decodes report.json in dir into v. It reports false, without
// error, when the file does not exist.
func LoadReport(dir string, v any) (bool, error) {
	bz, err := os.ReadFile(filepath.Join(dir, reportFile))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return false, fmt.Errorf("error unmarshaling %s: %w", reportFile, err)
	}
	return true, nil
}

// SaveReport writes v as indented JSON to report.json in dir, creating dir if needed.
func SaveReport(dir string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, reportFile), bz, 0o644)
}

// NewLogger returns a zerolog logger writing JSON lines ("json") or
// human readable output ("console", the default) to w.
func NewLogger(format string, w io.Writer) (zerolog.Logger, error) {
	switch format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return zerolog.New(w).With().Timestamp().Logger(), nil
}
