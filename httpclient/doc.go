// Package httpclient provides a configurable HTTP client used by the LLM
// adapters: bearer/API-key auth, TLS, an optional forward proxy for secure
// requests, classified errors, and incremental streaming responses decoded
// as server-sent events.
//
// The client reads buffered response bodies in full — including error
// bodies, so diagnostics are never lost — and exposes streaming bodies
// without buffering them.
package httpclient
