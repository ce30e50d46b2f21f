// Package telemetry owns the Prometheus collectors and the OpenTelemetry
// tracer used while evaluating decision graphs.
//
// Metrics are registered on a caller-supplied prometheus.Registerer so that
// tests and embedding hosts stay isolated from the global registry. A nil
// *Metrics is valid and records nothing. Spans go to the global tracer
// provider, which is a no-op until the host installs one.
package telemetry
