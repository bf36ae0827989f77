// Package logging builds the slog loggers used by captioner.
//
// Console output goes to stderr in text or JSON form. The interactive editor
// owns the terminal, so edit runs log to a file (log.file) or nowhere.
package logging
