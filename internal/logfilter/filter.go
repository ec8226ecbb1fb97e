// Package logfilter reconstructs structured request/response records from
// the LiteLLM proxy's interleaved, line-oriented log stream and reformats
// them for human consumption.
//
// The filter is a pure state machine: it performs no I/O and is driven one
// line at a time by the caller's read loop, so it needs no locking.
package logfilter

import "strings"

// StreamFilter buffers partial multi-line request/response blocks. Exactly
// one of inRequest/inResponse is true while a block is being accumulated.
type StreamFilter struct {
	buffer     string
	inRequest  bool
	inResponse bool
	withColor  bool
}

func NewStreamFilter(withColor bool) *StreamFilter {
	return &StreamFilter{withColor: withColor}
}

// ProcessLine feeds one log line (without trailing newline) through the
// state machine. It returns a formatted record and true exactly when the
// line completed a parsable block; every other line returns ("", false).
func (f *StreamFilter) ProcessLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if f.inRequest || f.inResponse {
		if trimmed == "" {
			return f.flush()
		}
		f.append(line)
		return "", false
	}

	switch {
	case IsRequestLog(line):
		f.inRequest = true
		f.append(line)
	case IsResponseLog(line):
		f.inResponse = true
		f.append(line)
	}
	return "", false
}

// Buffered reports whether a partial block is currently accumulated.
func (f *StreamFilter) Buffered() bool {
	return f.buffer != ""
}

func (f *StreamFilter) append(line string) {
	if f.buffer == "" {
		f.buffer = line
	} else {
		f.buffer += "\n" + line
	}
}

// flush parses the accumulated block and resets to idle. Unparsable
// blocks are discarded without output.
func (f *StreamFilter) flush() (string, bool) {
	chunk := f.buffer
	wasRequest := f.inRequest

	f.buffer = ""
	f.inRequest = false
	f.inResponse = false

	if wasRequest {
		req, err := ParseRequest(chunk)
		if err != nil {
			return "", false
		}
		return req.Format(f.withColor), true
	}

	resp, err := ParseResponse(chunk)
	if err != nil {
		return "", false
	}
	return resp.Format(f.withColor), true
}
