package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter is shared by the standard logger, the gorm logger and the access log.
var LogWriter io.Writer = os.Stdout

// InitLogging tees log output to stdout and the configured log file.
// The returned file is nil when the file could not be opened.
func InitLogging(path string) *os.File {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Printf("Warning: failed to create log directory: %v", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: failed to open log file: %v", err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return nil
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(LogWriter)
	return logFile
}
