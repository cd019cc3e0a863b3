// Package chatstream decodes the relay's wire format on the client side:
// one `data: {"text":"..."}` event per line, blank-line separated, ended by
// the literal `data: [DONE]` sentinel. The consumer is incremental — it can
// be fed arbitrary byte chunks and carries partial lines across feeds.
package chatstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Sentinel is the terminal marker signaling clean end-of-stream.
const Sentinel = "[DONE]"

// FallbackMessage replaces the assembled reply when a stream dies before
// the sentinel, so the interface never shows a silently frozen buffer.
const FallbackMessage = "Something went wrong. Please try again."

// ErrInterrupted reports a stream that ended without the sentinel.
var ErrInterrupted = errors.New("chatstream: stream ended before sentinel")

const eventPrefix = "data: "

type eventPayload struct {
	Text string `json:"text"`
}

// Consumer holds the incremental decode state: the carried-over partial
// line and the single assistant message being assembled. The zero value is
// ready to use.
type Consumer struct {
	pending []byte
	message strings.Builder
	done    bool
}

// Feed processes one chunk and returns the text fragments it completed, in
// arrival order. Lines that are not events or whose payload fails to parse
// are skipped; the sentinel marks the consumer done and everything after it
// is ignored.
func (c *Consumer) Feed(chunk []byte) []string {
	if c.done {
		return nil
	}

	c.pending = append(c.pending, chunk...)

	var fragments []string
	for {
		i := bytes.IndexByte(c.pending, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(c.pending[:i]), "\r")
		c.pending = c.pending[i+1:]

		if !strings.HasPrefix(line, eventPrefix) {
			continue
		}
		data := strings.TrimSpace(line[len(eventPrefix):])
		if data == Sentinel {
			c.done = true
			c.pending = nil
			break
		}

		var payload eventPayload
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			// Malformed frame: dropped, never aborts the stream.
			continue
		}
		if payload.Text != "" {
			c.message.WriteString(payload.Text)
			fragments = append(fragments, payload.Text)
		}
	}
	return fragments
}

// Done reports whether the sentinel has been observed.
func (c *Consumer) Done() bool {
	return c.done
}

// Message returns the assistant message assembled so far.
func (c *Consumer) Message() string {
	return c.message.String()
}

// Consume drives a Consumer over r chunk by chunk, calling onFragment (if
// non-nil) for each decoded fragment, and returns the assembled message
// after a clean sentinel. A read failure or EOF before the sentinel returns
// FallbackMessage and ErrInterrupted.
func Consume(r io.Reader, onFragment func(string)) (string, error) {
	var c Consumer
	buf := make([]byte, 4096)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, fragment := range c.Feed(buf[:n]) {
				if onFragment != nil {
					onFragment(fragment)
				}
			}
			if c.Done() {
				return c.Message(), nil
			}
		}
		if err != nil {
			return FallbackMessage, ErrInterrupted
		}
	}
}
