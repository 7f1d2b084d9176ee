// Package observability turns engine lifecycle events into Prometheus metrics
// and structured log lines.
//
// Both are exposed as domain.LifecycleHooks so they can be merged and passed
// to the engine with WithLifecycleHooks.
package observability
