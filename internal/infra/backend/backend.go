// Package backend contains the HTTP adapters for the three backend
// services. Each adapter issues bounded-timeout requests, interprets the
// status code and translates the wire payload into composite entities.
//
// Status interpretation is strict: 404 maps to client.ErrNotFound, 409 to
// client.ErrConflict, any other non-2xx status or transport failure to a
// *domainerrors.BackendError carrying the upstream status and body. The
// distinction is load-bearing; orchestrators branch on it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"bazaar/config"
	"bazaar/internal/domain/client"
	domainerrors "bazaar/internal/domain/errors"
)

// maxErrorBodyBytes bounds how much of an upstream error body is retained
// for diagnostics.
const maxErrorBodyBytes = 4 << 10

// restClient is the shared transport for one backend service.
type restClient struct {
	service string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func newRESTClient(service, baseURL string, cfg *config.Config) *restClient {
	return &restClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: cfg.Services.Timeout,
		client:  &http.Client{},
	}
}

// doJSON issues one request and decodes a JSON response into out (skipped
// when out is nil). The context carries the per-call timeout; cancelling
// the inbound request cancels the backend call with it.
func (c *restClient) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domainerrors.NewBackendError(c.service, 0, "", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(client.ErrNotFound, "%s %s", method, path)
	case resp.StatusCode == http.StatusConflict:
		return errors.Wrapf(client.ErrConflict, "%s %s", method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return domainerrors.NewBackendError(c.service, resp.StatusCode, string(raw), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewBackendError(c.service, resp.StatusCode, "undecodable response body", err)
	}

	return nil
}
