package logfilter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmdsnb/freerouter/internal/cli"
)

// Request is a reconstructed outbound proxy request. Immutable once built.
type Request struct {
	Timestamp string
	Method    string
	URL       string
	Headers   map[string]string
	Body      map[string]interface{}
}

// Response is a reconstructed upstream response. DurationMS is nil when
// the log stream gives no way to derive it.
type Response struct {
	Timestamp  string
	StatusCode int
	DurationMS *int
	Data       map[string]interface{}
}

func paint(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return cli.Paint(s, color)
}

// Format renders the request as a human-readable multi-line block. The
// withColor flag only toggles ANSI decoration, never content.
func (r *Request) Format(withColor bool) string {
	var b strings.Builder

	b.WriteString(paint("🚀 REQUEST", cli.Bold+cli.Cyan, withColor))
	b.WriteString(" [" + paint(r.Timestamp, cli.Dim, withColor) + "]\n")
	b.WriteString(paint(r.Method, cli.Green, withColor))
	b.WriteString(" " + paint(r.URL, cli.Blue, withColor) + "\n")

	if len(r.Headers) > 0 {
		b.WriteString("Headers:\n")
		for key, value := range r.Headers {
			b.WriteString("  " + paint(key, cli.Yellow, withColor) + ": " + value + "\n")
		}
	}

	if r.Body != nil {
		b.WriteString("Body:\n")
		if data, err := json.MarshalIndent(r.Body, "  ", "  "); err == nil {
			b.WriteString("  " + string(data) + "\n")
		}
	}

	return b.String()
}

// Format renders the response as a human-readable multi-line block,
// omitting any field absent from the data.
func (r *Response) Format(withColor bool) string {
	var b strings.Builder

	b.WriteString(paint("📥 RESPONSE", cli.Bold+cli.Purple, withColor))
	b.WriteString(" [" + paint(r.Timestamp, cli.Dim, withColor) + "]")
	if r.StatusCode != 0 {
		status := fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
		color := cli.Green
		if r.StatusCode >= 400 {
			color = cli.Red
		}
		b.WriteString(" " + paint(status, color, withColor))
	}
	if r.DurationMS != nil {
		b.WriteString(fmt.Sprintf(" (%dms)", *r.DurationMS))
	}
	b.WriteString("\n")

	if model, ok := r.Data["model"].(string); ok && model != "" {
		b.WriteString("  Model: " + paint(model, cli.Cyan, withColor) + "\n")
	}
	if id, ok := r.Data["id"].(string); ok && id != "" {
		b.WriteString("  ID: " + id + "\n")
	}
	if content := extractContent(r.Data); content != "" {
		b.WriteString("  Content: " + content + "\n")
	}
	if usage := formatUsage(r.Data); usage != "" {
		b.WriteString("  Tokens: " + paint(usage, cli.Yellow, withColor) + "\n")
	}

	return b.String()
}

// extractContent pulls choices[0].message.content when present.
func extractContent(data map[string]interface{}) string {
	choices, ok := data["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return ""
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return ""
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return ""
	}
	content, _ := message["content"].(string)
	return content
}

func formatUsage(data map[string]interface{}) string {
	usage, ok := data["usage"].(map[string]interface{})
	if !ok {
		return ""
	}
	var parts []string
	for _, field := range []struct{ key, label string }{
		{"prompt_tokens", "prompt"},
		{"completion_tokens", "completion"},
		{"total_tokens", "total"},
	} {
		if n, ok := usage[field.key].(float64); ok {
			parts = append(parts, fmt.Sprintf("%s=%d", field.label, int(n)))
		}
	}
	return strings.Join(parts, " ")
}
