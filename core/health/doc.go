// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, studio.SelfCheck))
//
// Readiness checks take a context and return an error; any failure answers 503.
package health
