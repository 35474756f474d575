package llm

import (
	"context"
	"errors"
	"io"

	"github.com/penflow/llmkit/httpclient"
)

// readStream decodes the response body incrementally and feeds fragments to
// ch. It owns the connection: the response is closed on every exit path —
// clean end-of-stream, decode failure, transport failure, and consumer
// abandonment via ctx.
func (a *Adapter) readStream(ctx context.Context, resp *httpclient.StreamResponse, ch chan<- StreamChunk) {
	defer close(ch)
	defer func() { _ = resp.Close() }()

	for {
		event, err := resp.SSE.Next()
		if err != nil {
			// A transport close without the end-of-stream sentinel is
			// treated as a normal end: whatever was delivered stands.
			if !errors.Is(err, io.EOF) {
				a.emit(ctx, ch, StreamChunk{Err: newTransportError(a.dialect.Name(), err)})
			}
			return
		}

		content, done, perr := a.dialect.ParseStreamChunk([]byte(event.Data))
		if perr != nil {
			if errors.Is(perr, ErrSkipChunk) {
				// Malformed or empty payloads are tolerated, not escalated.
				continue
			}
			a.emit(ctx, ch, StreamChunk{Err: newDecodeError(a.dialect.Name(), "parse stream chunk", perr)})
			return
		}

		// Empty fragments are suppressed, never delivered.
		if content != "" {
			if !a.emit(ctx, ch, StreamChunk{Content: content}) {
				return
			}
		}

		// The sentinel ends the sequence immediately, even if more bytes
		// follow on the wire.
		if done {
			return
		}
	}
}

// emit delivers one chunk unless the consumer has gone away.
func (a *Adapter) emit(ctx context.Context, ch chan<- StreamChunk, chunk StreamChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
