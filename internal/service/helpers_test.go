package service

import (
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fixedNow pins a service clock.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
