package transport

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ANcpLua/qyl/pkg/debug"
	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// maxEventSize bounds a single SSE line.
const maxEventSize = 1 << 20

// Event is one server-sent event frame.
type Event struct {
	ID    string
	Event string
	Data  string
	// Retry is the reconnection delay in milliseconds, or 0.
	Retry int
}

// SSEReader splits an event stream into frames:
//
//	id: 42
//	event: span
//	data: {"type":"span","data":{...}}
//
// Comment lines (":" prefix, used for heartbeats) are skipped; multi-line
// data is joined with "\n".
type SSEReader struct {
	scanner *bufio.Scanner
}

func NewSSEReader(r io.Reader) *SSEReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	return &SSEReader{scanner: s}
}

// Next returns the next frame that carries data. It returns io.EOF when the
// stream ends cleanly.
func (r *SSEReader) Next() (Event, error) {
	var (
		ev      Event
		data    []string
		hasData bool
	)
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			if hasData {
				ev.Data = strings.Join(data, "\n")
				return ev, nil
			}
			ev = Event{}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "data":
			data = append(data, value)
			hasData = true
		case "event":
			ev.Event = value
		case "id":
			ev.ID = value
		case "retry":
			if n, err := strconv.Atoi(value); err == nil {
				ev.Retry = n
			}
		}
	}
	if err := r.scanner.Err(); err != nil {
		return Event{}, err
	}
	if hasData {
		ev.Data = strings.Join(data, "\n")
		return ev, nil
	}
	return Event{}, io.EOF
}

// Events decodes a qyl event stream into StreamEvent envelopes. Malformed
// frames are logged and skipped; the sequence ends at EOF, on a read error
// (yielded once) or when ctx is cancelled.
func Events(ctx context.Context, body io.Reader) iter.Seq2[*models.StreamEvent, error] {
	return func(yield func(*models.StreamEvent, error) bool) {
		r := NewSSEReader(body)
		for {
			if ctx.Err() != nil {
				return
			}
			frame, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctx.Err() == nil {
					yield(nil, err)
				}
				return
			}
			debug.Trace("streaming", "sse frame", "id", frame.ID, "event", frame.Event, "data", frame.Data)

			ev, err := serialization.Unmarshal([]byte(frame.Data), models.NewStreamEvent)
			if err != nil {
				slog.Warn("skipping malformed SSE frame",
					"error", err.Error(),
					"data", debug.Truncate(frame.Data, 200),
				)
				continue
			}
			if ev.Type == nil && frame.Event != "" {
				t := frame.Event
				ev.Type = &t
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}
