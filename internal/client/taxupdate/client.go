// Package taxupdate is the wire client for the external tax-rate provider.
package taxupdate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	httpClient "github.com/haloiq/tax-api/internal/client/http"
	"github.com/haloiq/tax-api/internal/types/business"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	// maxBodyBytes bounds how much of a provider response is buffered
	maxBodyBytes = 1 << 20
)

// ErrInvalidBody is returned when a 200 response does not carry JSON
var ErrInvalidBody = errors.New("taxupdate returned a non-JSON body")

// Client manages communication with the tax-update provider API.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

// NewClient creates a client for baseURL. The provider is called exactly once
// per request, so retries are disabled regardless of the options passed.
func NewClient(baseURL, apiKey string, timeout time.Duration, options ...httpClient.ClientOption) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(timeout),
		httpClient.WithDefaultHeader("User-Agent", "haloiq-tax-api"),
	}, options...)
	opts = append(opts, httpClient.WithRetryConfig(nil))

	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// GetTax calls GET /api/tax/{code} and returns the response body verbatim.
// Any status other than 200 is an error.
func (c *Client) GetTax(ctx context.Context, code string, query business.ProviderQuery) ([]byte, error) {
	requestOptions := []httpClient.RequestOption{
		httpClient.WithQueryParam("paydate", query.PayDate),
		httpClient.WithQueryParam("payperiods", strconv.Itoa(query.PayPeriods)),
		httpClient.WithQueryParam("filingstatus", query.FilingStatus),
		httpClient.WithQueryParam("earnings", query.Earnings.String()),
		httpClient.WithQueryParam("exemptions", strconv.Itoa(query.Exemptions)),
		httpClient.WithQueryParam("stateexemptions", strconv.Itoa(query.StateExemptions)),
	}
	if query.Zip != "" {
		requestOptions = append(requestOptions, httpClient.WithQueryParam("zip", query.Zip))
	}
	if c.apiKey != "" {
		requestOptions = append(requestOptions, httpClient.WithBearerToken(c.apiKey))
	}

	resp, err := c.httpClient.Get(ctx, "/api/tax/"+url.PathEscape(code), requestOptions...)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrap(err, "taxupdate request failed")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(&httpClient.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        resp.Request.URL.String(),
			Method:     resp.Request.Method,
		}, "taxupdate returned an unexpected status")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read taxupdate response body")
	}
	if !json.Valid(body) {
		return nil, ErrInvalidBody
	}

	return body, nil
}
