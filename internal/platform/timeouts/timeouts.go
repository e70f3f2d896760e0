// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// UpstreamRequest caps one HTTP round trip to the posts API, retries excluded.
const UpstreamRequest = 10 * time.Second

// UpstreamRetryWindow caps the total time spent retrying one upstream read.
const UpstreamRetryWindow = 20 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
