package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the CLI logger. With a log file the output goes there so
// it does not interleave with the table on screen; the returned func closes
// the file.
func setupLogger(debug, jsonFormat bool, logFile string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	if jsonFormat {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, closeFn, nil
}
