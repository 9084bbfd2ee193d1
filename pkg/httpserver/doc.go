// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns after the context is cancelled or SIGINT/SIGTERM arrives and
// the in-flight requests have drained, bounded by Config.ShutdownTimeout.
// HealthHandler serves liveness and readiness probes.
package httpserver
