// Package sse provides an incremental Server-Sent Events reader for
// line-oriented completion streams.
package sse

import (
	"bufio"
	"io"
	"strings"
)

// Event is a single server-sent event.
type Event struct {
	// Event is the event type (from an "event:" line), if any.
	Event string
	// Data is the payload of one "data:" line.
	Data string
	// ID is the event ID (from an "id:" line), if any.
	ID string
}

// Reader reads server-sent events from a stream as bytes arrive.
//
// Unlike a strict SSE parser, Next yields one event per "data:" line rather
// than joining multi-line data blocks. Chat-completion endpoints emit exactly
// one JSON object per data line, and consumers must see each payload as soon
// as its line is complete.
type Reader interface {
	// Next returns the next event. It returns io.EOF when the stream ends.
	Next() (*Event, error)
	// Close releases the underlying stream.
	Close() error
}

type reader struct {
	br   *bufio.Reader
	body io.ReadCloser

	// pending field values applied to the next data event
	eventType string
	eventID   string
}

// NewReader creates a Reader from a streaming response body.
func NewReader(body io.ReadCloser) Reader {
	return &reader{
		br:   bufio.NewReader(body),
		body: body,
	}
}

// Next returns the next event. A logical line split across multiple network
// reads is reassembled before any field inspection happens.
func (r *reader) Next() (*Event, error) {
	for {
		line, err := r.br.ReadString('\n')
		if len(line) > 0 {
			if ev := r.consume(strings.TrimRight(line, "\r\n")); ev != nil {
				return ev, nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
	}
}

// consume processes one logical line and returns an event when the line
// carries a data payload.
func (r *reader) consume(line string) *Event {
	if line == "" {
		// Blank line ends an event block; drop any pending metadata.
		r.eventType = ""
		r.eventID = ""
		return nil
	}
	if strings.HasPrefix(line, ":") {
		// Comment / keep-alive.
		return nil
	}

	field, value := splitField(line)
	switch field {
	case "data":
		return &Event{Event: r.eventType, Data: value, ID: r.eventID}
	case "event":
		r.eventType = value
	case "id":
		r.eventID = value
	}
	// Unknown fields are ignored.
	return nil
}

// Close releases the underlying stream.
func (r *reader) Close() error {
	return r.body.Close()
}

// splitField parses an SSE line into field name and value.
func splitField(line string) (field, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field = line[:idx]
	value = line[idx+1:]
	// A single space after the colon is part of the framing, not the value.
	if value != "" && value[0] == ' ' {
		value = value[1:]
	}
	return field, value
}
