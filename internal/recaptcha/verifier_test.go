package recaptcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteverify(t *testing.T, status int, reply string, seen *url.Values, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		if seen != nil {
			*seen = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify_SendsSecretTokenAndRemoteIP(t *testing.T) {
	var seen url.Values
	var calls int32
	srv := newSiteverify(t, http.StatusOK, `{"success":true}`, &seen, &calls)

	v := NewVerifier("s3cret", srv.URL, time.Second)
	require.NoError(t, v.Verify(context.Background(), "", "203.0.113.7", "tok1"))

	assert.Equal(t, "s3cret", seen.Get("secret"))
	assert.Equal(t, "tok1", seen.Get("response"))
	assert.Equal(t, "203.0.113.7", seen.Get("remoteip"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestVerify_Classification(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		reply    string
		wantKind Kind
		wantOK   bool
	}{
		{"success without expected action", "", `{"success":true,"action":"anything"}`, 0, true},
		{"success with matching action", "contact", `{"success":true,"action":"contact"}`, 0, true},
		{"error codes mean configuration error", "", `{"success":false,"error-codes":["invalid-input-secret"]}`, ConfigurationError, false},
		{"absent success with error codes", "contact", `{"error-codes":["missing-input-response"]}`, ConfigurationError, false},
		{"failure without codes is validation error", "", `{"success":false}`, ValidationError, false},
		{"empty code list is validation error", "", `{"success":false,"error-codes":[]}`, ValidationError, false},
		{"absent success is validation error", "", `{}`, ValidationError, false},
		{"action mismatch", "contact", `{"success":true,"action":"login"}`, InvalidAction, false},
		{"action missing from reply", "contact", `{"success":true}`, InvalidAction, false},
		{"action case differs", "contact", `{"success":true,"action":"Contact"}`, InvalidAction, false},
		{"failure outranks action mismatch", "contact", `{"success":false,"action":"login"}`, ValidationError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newSiteverify(t, http.StatusOK, tt.reply, nil, nil)
			err := NewVerifier("s3cret", srv.URL, time.Second).Verify(context.Background(), tt.action, "203.0.113.7", "tok")

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}

			var ce *Error
			require.True(t, errors.As(err, &ce), "expected *Error, got %v", err)
			assert.Equal(t, tt.wantKind, ce.Kind)
		})
	}
}

func TestVerify_ConfigurationErrorCarriesCodes(t *testing.T) {
	srv := newSiteverify(t, http.StatusOK, `{"success":false,"error-codes":["invalid-input-secret","bad-request"]}`, nil, nil)

	err := NewVerifier("wrong", srv.URL, time.Second).Verify(context.Background(), "", "203.0.113.7", "tok")

	var ce *Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"invalid-input-secret", "bad-request"}, ce.ErrorCodes)
	assert.False(t, ce.IsValidation())
}

func TestVerify_InvalidActionCarriesBothActions(t *testing.T) {
	srv := newSiteverify(t, http.StatusOK, `{"success":true,"action":"login"}`, nil, nil)

	err := NewVerifier("s3cret", srv.URL, time.Second).Verify(context.Background(), "contact", "203.0.113.7", "tok")

	var ce *Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "contact", ce.Expected)
	assert.Equal(t, "login", ce.Actual)
	assert.True(t, ce.IsValidation())
}

func TestVerify_RequestFailures(t *testing.T) {
	t.Run("non-200", func(t *testing.T) {
		srv := newSiteverify(t, http.StatusBadGateway, `oops`, nil, nil)
		err := NewVerifier("s3cret", srv.URL, time.Second).Verify(context.Background(), "", "203.0.113.7", "tok")

		var ce *Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, RequestFailed, ce.Kind)
	})

	t.Run("malformed json", func(t *testing.T) {
		srv := newSiteverify(t, http.StatusOK, `{"success":`, nil, nil)
		err := NewVerifier("s3cret", srv.URL, time.Second).Verify(context.Background(), "", "203.0.113.7", "tok")

		var ce *Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, RequestFailed, ce.Kind)
	})

	t.Run("transport error", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		v := NewVerifier("s3cret", "http://siteverify.invalid", time.Second)
		v.SetHTTPClient(clientFunc(func(*http.Request) (*http.Response, error) { return nil, cause }))

		err := v.Verify(context.Background(), "", "203.0.113.7", "tok")

		var ce *Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, RequestFailed, ce.Kind)
		assert.ErrorIs(t, err, cause)
		assert.False(t, ce.IsValidation())
	})
}

type clientFunc func(*http.Request) (*http.Response, error)

func (f clientFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
