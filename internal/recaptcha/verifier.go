// Package recaptcha verifies reCAPTCHA tokens against the siteverify API.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient is the subset of *http.Client the verifier needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Verifier checks tokens with a single POST per call. It never retries.
type Verifier struct {
	secret   string
	endpoint string
	client   HTTPClient
}

// NewVerifier creates a verifier for the given secret and endpoint
func NewVerifier(secret, endpoint string, timeout time.Duration) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetHTTPClient replaces the transport, mainly for tests
func (v *Verifier) SetHTTPClient(client HTTPClient) {
	v.client = client
}

// siteverifyResponse is the subset of the siteverify reply we classify on
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
	Action     string   `json:"action,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
}

// Verify checks token for remoteIP. When expectedAction is non-empty the
// reply's action must match it exactly. Failures are returned as *Error.
func (v *Verifier) Verify(ctx context.Context, expectedAction, remoteIP, token string) error {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	form.Set("remoteip", remoteIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &Error{Kind: RequestFailed, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return &Error{Kind: RequestFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Kind: RequestFailed, Err: fmt.Errorf("received a non-200 status code, %d", resp.StatusCode)}
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &Error{Kind: RequestFailed, Err: fmt.Errorf("decode response: %w", err)}
	}

	return classify(expectedAction, result)
}

func classify(expectedAction string, result siteverifyResponse) error {
	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return &Error{Kind: ConfigurationError, ErrorCodes: result.ErrorCodes}
		}
		return &Error{Kind: ValidationError}
	}

	if expectedAction != "" && result.Action != expectedAction {
		return &Error{Kind: InvalidAction, Expected: expectedAction, Actual: result.Action}
	}

	return nil
}
