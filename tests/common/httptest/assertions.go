//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors httperr.Response as the client sees it.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks status and message and returns the decoded body
// so callers can inspect the detail of a slot conflict.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body ErrorBody
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg)
	}
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
