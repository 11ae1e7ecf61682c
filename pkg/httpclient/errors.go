package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// ResponseError represents a non-2xx response from an upstream HTTP API.
// Detail carries the server's own error message when the body was a JSON
// object with a "detail" field (FastAPI-style); otherwise Detail is empty
// and Error() falls back to "<status code> <status text>".
type ResponseError struct {
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "Unknown Status"
	}
	return strconv.Itoa(e.StatusCode) + " " + text
}

// detailBody is the error body shape used by the product search backend.
type detailBody struct {
	Detail string `json:"detail"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and
// translates it into a *ResponseError. The body is fully consumed and
// closed. The caller should only invoke this when resp.StatusCode
// indicates an error (i.e., not 2xx).
func ParseResponseError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return &ResponseError{StatusCode: resp.StatusCode}
	}

	var body detailBody
	if json.Unmarshal(bodyBytes, &body) == nil && body.Detail != "" {
		return &ResponseError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}

	return &ResponseError{StatusCode: resp.StatusCode}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
