// Package logging provides structured logging for showroom.
//
// It wraps Go's log/slog to write JSON lines, either to a debug.log file in
// a chosen directory or to stderr. Child loggers carry persistent attributes
// (session ID, view name) so every line from one run can be grouped together.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger = logger.WithSession(logging.NewSessionID())
//	logger.WithView("browse").Info("selection changed", "selection", "red")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"selection changed","session_id":"...","view":"browse","selection":"red"}
//
// # Testing
//
// Use [NopLogger] to discard all output.
//
// # Thread Safety
//
// [Logger] is safe for concurrent use. Child loggers share the parent's
// handler and file.
package logging
