package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartExternalSegment starts a New Relic external segment for an outbound
// HTTP request. Returns nil when no transaction is in the context.
func StartExternalSegment(ctx context.Context, req *http.Request) *newrelic.ExternalSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return newrelic.StartExternalSegment(txn, req)
}

// InstrumentHTTPRequest wraps an HTTP request with New Relic external segment
// instrumentation
//
//	Usage: resp, err := InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
//	  return client.Do(req)
//	})
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	segment := StartExternalSegment(ctx, req)
	if segment != nil {
		defer segment.End()
	}

	resp, err := doFunc()

	if segment != nil && resp != nil {
		segment.Response = resp
	}

	return resp, err
}
