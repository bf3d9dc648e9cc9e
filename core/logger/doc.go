// Package logger builds the zap loggers used by the server and the CLI.
//
// Level accepts any zap level name (debug, info, warn, error). The debug
// level switches to zap's development config; Format picks json or console
// encoding independently of the level.
//
// WithRayID tags a logger with the request id set by the rayid middleware,
// so every line a handler writes can be traced back to its request:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Rejected plan request", zap.Error(err))
package logger
