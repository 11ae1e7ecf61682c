package httpclient

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseResponseError_DetailBody(t *testing.T) {
	resp := newResponse(http.StatusUnauthorized, `{"detail":"Invalid API key"}`)

	err := ParseResponseError(resp)
	require.Error(t, err)

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusUnauthorized, respErr.StatusCode)
	assert.Equal(t, "Invalid API key", err.Error())
}

func TestParseResponseError_NonJSONBody(t *testing.T) {
	resp := newResponse(http.StatusInternalServerError, "<html>oops</html>")

	err := ParseResponseError(resp)
	require.Error(t, err)
	assert.Equal(t, "500 Internal Server Error", err.Error())
}

func TestParseResponseError_EmptyDetail(t *testing.T) {
	resp := newResponse(http.StatusGatewayTimeout, `{"detail":""}`)

	err := ParseResponseError(resp)
	assert.Equal(t, "504 Gateway Timeout", err.Error())
}

func TestParseResponseError_JSONWithoutDetail(t *testing.T) {
	resp := newResponse(http.StatusBadRequest, `{"message":"nope"}`)

	err := ParseResponseError(resp)
	assert.Equal(t, "400 Bad Request", err.Error())
}

func TestResponseError_UnknownStatusCode(t *testing.T) {
	err := &ResponseError{StatusCode: 599}
	assert.Equal(t, "599 Unknown Status", err.Error())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(400))
	assert.True(t, IsClientError(499))
	assert.False(t, IsClientError(399))
	assert.False(t, IsClientError(500))
}
