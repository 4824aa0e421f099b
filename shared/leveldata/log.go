package leveldata

import "github.com/charmbracelet/log"

var logger = log.Default()

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
