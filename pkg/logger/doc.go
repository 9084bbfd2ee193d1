// Package logger builds log/slog loggers for the service.
//
// New returns a JSON or text logger whose handler is wrapped by a
// LogHandlerDecorator. The decorator reads attributes from the context of
// every record, which is how request ids set by middleware reach log lines
// without being passed around:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithLevel(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "field validated", logger.Input(raw, ok))
//
// The attribute helpers (Error, RequestID, Component, Event, Duration,
// Preset, Input) keep key names uniform across packages.
package logger
