package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobtools/adzuna-go/internal/logger"

	"go.uber.org/zap"
)

const errorBodyLogLimit = 512

// Error describes a failed Fetch. Exactly one failure class applies:
//
//   - transport failure: StatusCode is 0, Err holds the cause;
//   - API-reported failure: StatusCode holds the HTTP status and API
//     holds the parsed error envelope when the body contained one;
//   - decode failure on a 200 response: StatusCode is 0, Err holds the
//     cause.
type Error struct {
	StatusCode int
	API        *Exception
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.API != nil:
		return fmt.Sprintf("adzuna: api error %d (%s): %s", e.StatusCode, e.API.Exception, e.API.Doc)
	case e.StatusCode != 0:
		return fmt.Sprintf("adzuna: api error %d", e.StatusCode)
	default:
		return fmt.Sprintf("adzuna: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// request carries the state shared by every endpoint builder: the
// owning client, the endpoint path, the resolved country code and the
// accumulated parameters.
type request[T any] struct {
	client   *Client
	endpoint string
	country  string // empty for endpoints without a country segment
	page     int    // 0 for endpoints without a page segment
	params   Parameters
}

func newRequest[T any](c *Client, endpoint, country string) request[T] {
	return request[T]{client: c, endpoint: endpoint, country: country}
}

func (r *request[T]) url() string {
	root := strings.TrimSuffix(r.client.APIURL, "/")
	if r.country == "" {
		return root + "/" + r.endpoint
	}

	u := root + "/jobs/" + r.country + "/" + r.endpoint
	if r.page > 0 {
		u += "/" + strconv.Itoa(r.page)
	}

	return u
}

// validatable is implemented by responses for which the API guarantees
// certain fields. encoding/json does not reject absent fields on its
// own, so the check runs after a successful decode.
type validatable interface {
	validate() error
}

// Fetch performs the configured request: one GET, no retries. It may be
// called again on the same builder; doing so re-sends an identical
// request.
func (r *request[T]) Fetch(ctx context.Context) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(), nil)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("build request: %w", err)}
	}

	q := r.params.Values()
	q.Set("app_id", r.client.appID)
	q.Set("app_key", r.client.appKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if r.client.UserAgent != "" {
		req.Header.Set("User-Agent", r.client.UserAgent)
	}

	r.client.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := r.client.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		ferr := &Error{StatusCode: resp.StatusCode}

		// The envelope is best effort. The status alone is still an
		// error when the body does not parse.
		var envelope Exception
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Exception != "" {
			ferr.API = &envelope
		}

		r.client.logger.Debug("api error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logger.TruncateForLog(string(body), errorBodyLogLimit)),
		)

		return nil, ferr
	}

	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &Error{Err: fmt.Errorf("decode response: %w", err)}
	}
	if v, ok := any(out).(validatable); ok {
		if err := v.validate(); err != nil {
			return nil, &Error{Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return out, nil
}
