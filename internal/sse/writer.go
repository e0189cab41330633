package sse

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// KeepalivePeriod is the interval between keepalive comments on an
	// otherwise idle stream
	KeepalivePeriod = 30 * time.Second

	// DefaultRetry is the reconnect delay hint sent when a stream opens
	DefaultRetry = 2 * time.Second
)

// Writer sends server-sent events over an HTTP response. Each write is
// flushed immediately so events reach the client as they happen.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares w for event streaming and sets the SSE headers.
// Fails if the underlying writer cannot flush.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	return &Writer{w: w, flusher: flusher}, nil
}

// WriteRetry sends a reconnect delay hint
func (w *Writer) WriteRetry(d time.Duration) error {
	_, err := fmt.Fprintf(w.w, "retry: %d\n\n", d.Milliseconds())
	if err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// WriteEvent sends one named event with its data payload
func (w *Writer) WriteEvent(eventName, data string) error {
	_, err := w.w.Write(formatMessage(eventName, data))
	if err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// WriteKeepalive sends a comment line that keeps idle connections open
func (w *Writer) WriteKeepalive() error {
	_, err := w.w.Write([]byte(": keepalive\n\n"))
	if err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// formatMessage renders an SSE message. Multi-line data gets a "data: "
// prefix on every line, as the protocol requires.
func formatMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventName)
	b.WriteByte('\n')
	for _, line := range splitLines(data) {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// splitLines splits data into lines, normalizing line endings
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
