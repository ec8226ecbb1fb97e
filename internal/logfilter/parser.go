package logfilter

import (
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Marker lines emitted by the LiteLLM proxy around request/response dumps.
const (
	requestMarker  = "POST Request Sent from LiteLLM:"
	responseMarker = "RAW RESPONSE:"
)

var (
	timestampRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})`)
	urlRe       = regexp.MustCompile(`https?://[^\s'"\\]+`)
	headerRe    = regexp.MustCompile(`-H '([^:']+):\s*([^']*)'`)
	bodyRe      = regexp.MustCompile(`(?s)-d '(.*)'`)
	pyTrueRe    = regexp.MustCompile(`\bTrue\b`)
	pyFalseRe   = regexp.MustCompile(`\bFalse\b`)
	pyNoneRe    = regexp.MustCompile(`\bNone\b`)
)

var errUnparsable = errors.New("log block is not parsable")

// IsRequestLog reports whether a line starts a request dump.
func IsRequestLog(line string) bool {
	return strings.Contains(line, requestMarker)
}

// IsResponseLog reports whether a line starts a response dump.
func IsResponseLog(line string) bool {
	return strings.Contains(line, responseMarker)
}

// ExtractURL finds the first HTTP(S) URL in a buffered curl invocation.
// LiteLLM truncates the real endpoint when logging, so a bare /v1 path is
// completed to /v1/chat/completions. Returns "" when no URL is present.
func ExtractURL(text string) string {
	match := urlRe.FindString(text)
	if match == "" {
		return ""
	}
	u, err := url.Parse(match)
	if err != nil {
		return ""
	}
	if u.Path == "/v1" || u.Path == "/v1/" {
		u.Path = "/v1/chat/completions"
	}
	return u.String()
}

// ExtractHeaders collects -H 'Key: Value' tokens. A bare Authorization
// value gets the Bearer scheme prefixed.
func ExtractHeaders(text string) map[string]string {
	headers := make(map[string]string)
	for _, m := range headerRe.FindAllStringSubmatch(text, -1) {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if key == "Authorization" && !strings.HasPrefix(value, "Bearer ") {
			value = "Bearer " + value
		}
		headers[key] = value
	}
	return headers
}

// ExtractRequestBody converts the -d payload from Python dict-literal text
// into a JSON object: quote swap, True/False/None lowering, and removal of
// an empty extra_body field. Malformed payloads return an error.
func ExtractRequestBody(text string) (map[string]interface{}, error) {
	normalized := strings.ReplaceAll(text, "'", `"`)
	normalized = pyTrueRe.ReplaceAllString(normalized, "true")
	normalized = pyFalseRe.ReplaceAllString(normalized, "false")
	normalized = pyNoneRe.ReplaceAllString(normalized, "null")

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(normalized), &body); err != nil {
		return nil, errUnparsable
	}

	if extra, ok := body["extra_body"].(map[string]interface{}); ok && len(extra) == 0 {
		delete(body, "extra_body")
	}
	return body, nil
}

// extractTimestamp takes HH:MM:SS from the start of the block, falling
// back to the current wall clock.
func extractTimestamp(text string) string {
	if m := timestampRe.FindString(text); m != "" {
		return m
	}
	return time.Now().Format("15:04:05")
}

// ParseRequest reconstructs a Request from a buffered request block
// (marker line plus curl invocation). Any missing or malformed required
// piece yields an error; the caller drops the block silently.
func ParseRequest(chunk string) (*Request, error) {
	reqURL := ExtractURL(chunk)
	if reqURL == "" {
		return nil, errUnparsable
	}

	req := &Request{
		Timestamp: extractTimestamp(chunk),
		Method:    "POST",
		URL:       reqURL,
		Headers:   ExtractHeaders(chunk),
	}

	if m := bodyRe.FindStringSubmatch(chunk); m != nil {
		body, err := ExtractRequestBody(m[1])
		if err != nil {
			return nil, err
		}
		req.Body = body
	}

	return req, nil
}

// ParseResponse reconstructs a Response from a buffered response block.
// The JSON payload starts on the marker line and may span further lines.
func ParseResponse(chunk string) (*Response, error) {
	idx := strings.Index(chunk, responseMarker)
	if idx < 0 {
		return nil, errUnparsable
	}

	rest := chunk[idx+len(responseMarker):]
	brace := strings.Index(rest, "{")
	if brace < 0 {
		return nil, errUnparsable
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[brace:])), &data); err != nil {
		return nil, errUnparsable
	}

	return &Response{
		Timestamp:  extractTimestamp(chunk),
		StatusCode: 200,
		Data:       data,
	}, nil
}
