// Package telemetry provides OpenTelemetry initialization for the moodchef
// API: traces, metrics and logs exported over OTLP/HTTP.
//
// Any OTLP/HTTP collector works. Endpoints may carry a base path (for
// example Grafana Cloud's /otlp), which is prefixed to each signal's path.
package telemetry
