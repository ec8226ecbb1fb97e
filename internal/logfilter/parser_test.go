package logfilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURL_CompletesV1Endpoint(t *testing.T) {
	curl := "curl -X POST \\\nhttps://api.xiaomimomo.com/v1/ \\\n"
	assert.Equal(t, "https://api.xiaomimomo.com/v1/chat/completions", ExtractURL(curl))
}

func TestExtractURL_CompletesV1WithoutTrailingSlash(t *testing.T) {
	curl := "curl -X POST \\\nhttps://api.xiaomimomo.com/v1 \\\n"
	assert.Equal(t, "https://api.xiaomimomo.com/v1/chat/completions", ExtractURL(curl))
}

func TestExtractURL_LeavesCompleteURLAlone(t *testing.T) {
	curl := "curl -X POST \\\nhttps://api.test.com/v1/chat/completions \\\n"
	assert.Equal(t, "https://api.test.com/v1/chat/completions", ExtractURL(curl))
}

func TestExtractURL_LeavesOtherEndpointsAlone(t *testing.T) {
	curl := "curl -X POST \\\nhttps://api.test.com/v1/models \\\n"
	assert.Equal(t, "https://api.test.com/v1/models", ExtractURL(curl))
}

func TestExtractURL_NoURL(t *testing.T) {
	assert.Empty(t, ExtractURL("some random text"))
}

func TestExtractHeaders_BearerNormalization(t *testing.T) {
	text := "-H 'Authorization: sk-test' \\\n-H 'Content-Type: application/json' \\"
	headers := ExtractHeaders(text)
	assert.Equal(t, "Bearer sk-test", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Content-Type"])
}

func TestExtractHeaders_KeepsExistingScheme(t *testing.T) {
	headers := ExtractHeaders("-H 'Authorization: Bearer sk-abc'")
	assert.Equal(t, "Bearer sk-abc", headers["Authorization"])
}

func TestExtractRequestBody_Valid(t *testing.T) {
	body, err := ExtractRequestBody("{'model': 'mimo-v2-flash', 'messages': [{'role': 'user', 'content': 'hi'}]}")
	assert.NoError(t, err)
	assert.Equal(t, "mimo-v2-flash", body["model"])
	messages := body["messages"].([]interface{})
	assert.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])
}

func TestExtractRequestBody_RemovesEmptyExtraBody(t *testing.T) {
	body, err := ExtractRequestBody("{'model': 'test', 'extra_body': {}}")
	assert.NoError(t, err)
	assert.NotContains(t, body, "extra_body")
}

func TestExtractRequestBody_KeepsNonEmptyExtraBody(t *testing.T) {
	body, err := ExtractRequestBody("{'model': 'test', 'extra_body': {'key': 'value'}}")
	assert.NoError(t, err)
	assert.Contains(t, body, "extra_body")
	assert.Equal(t, "value", body["extra_body"].(map[string]interface{})["key"])
}

func TestExtractRequestBody_BooleanConversion(t *testing.T) {
	body, err := ExtractRequestBody("{'stream': True, 'echo': False}")
	assert.NoError(t, err)
	assert.Equal(t, true, body["stream"])
	assert.Equal(t, false, body["echo"])
}

func TestExtractRequestBody_Invalid(t *testing.T) {
	_, err := ExtractRequestBody("{'invalid: json")
	assert.Error(t, err)
}

func TestParseRequest_ValidBlock(t *testing.T) {
	chunk := `14:23:45 POST Request Sent from LiteLLM:
curl -X POST \
https://api.xiaomimomo.com/v1/ \
-H 'Authorization: sk-test' \
-d '{'model': 'mimo-v2-flash', 'messages': [{'role': 'user', 'content': 'hi'}]}'
`
	req, err := ParseRequest(chunk)
	assert.NoError(t, err)
	assert.Equal(t, "14:23:45", req.Timestamp)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.xiaomimomo.com/v1/chat/completions", req.URL)
	assert.Equal(t, "Bearer sk-test", req.Headers["Authorization"])
	assert.Equal(t, "mimo-v2-flash", req.Body["model"])
}

func TestParseRequest_NoURL(t *testing.T) {
	_, err := ParseRequest("Some random log line")
	assert.Error(t, err)
}

func TestParseRequest_FallsBackToWallClock(t *testing.T) {
	chunk := `POST Request Sent from LiteLLM:
curl -X POST \
https://api.test.com/v1/ \
-H 'Authorization: sk-test' \
-d '{'model': 'test'}'
`
	req, err := ParseRequest(chunk)
	assert.NoError(t, err)
	assert.Len(t, strings.Split(req.Timestamp, ":"), 3)
}

func TestParseResponse_ValidBlock(t *testing.T) {
	chunk := `14:23:46 RAW RESPONSE: {"id":"test123","created":1766858165,"model":"mimo-v2-flash","object":"chat.completion","choices":[{"finish_reason":"length","index":0,"message":{"content":"Hello! How can I help you today?","role":"assistant"}}],"usage":{"completion_tokens":10,"prompt_tokens":28,"total_tokens":38}}
`
	resp, err := ParseResponse(chunk)
	assert.NoError(t, err)
	assert.Equal(t, "14:23:46", resp.Timestamp)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "test123", resp.Data["id"])
	assert.Equal(t, "mimo-v2-flash", resp.Data["model"])
}

func TestParseResponse_NoJSON(t *testing.T) {
	_, err := ParseResponse("Some random log line")
	assert.Error(t, err)
}

func TestParseResponse_InvalidJSON(t *testing.T) {
	_, err := ParseResponse("14:23:46 RAW RESPONSE: {invalid json}")
	assert.Error(t, err)
}

func TestIsRequestLog(t *testing.T) {
	assert.True(t, IsRequestLog("14:23:45 POST Request Sent from LiteLLM:"))
	assert.False(t, IsRequestLog("Some other log line"))
}

func TestIsResponseLog(t *testing.T) {
	assert.True(t, IsResponseLog("14:23:46 RAW RESPONSE: {}"))
	assert.False(t, IsResponseLog("Some other log line"))
}
