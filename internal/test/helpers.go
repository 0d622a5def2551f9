// Package test provides helpers for tests that need a database or
// run requests against the full router.
package test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL is the public URL the test router is configured with.
const BaseURL = "http://example.com"

// TmpFile returns the path to a database file in a temporary
// directory that is removed when the test ends.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// body can be a string, which is sent as is, or any other value, which
// is encoded as JSON.
func Request(t *testing.T, co controllers.Controller, method, path string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteStr []byte
	switch v := body.(type) {
	case nil:
	case string:
		byteStr = []byte(v)
	case []byte:
		byteStr = v
	default:
		var err error
		byteStr, err = json.Marshal(v)
		require.Nil(t, err, "Request body could not be encoded")
	}

	u, _ := url.Parse(BaseURL)
	opts := router.Options{Version: "0.0.0"}
	r, teardown, err := router.Config(u, opts)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err.Error())
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"), opts)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBuffer(byteStr))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus verifies that the response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expected ...int) {
	assert.Contains(t, expected, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}
