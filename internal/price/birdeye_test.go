package price

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPrice_Success(t *testing.T) {
	var gotPath, gotKey, gotAddress string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		gotAddress = r.URL.Query().Get("address")
		_, _ = w.Write([]byte(`{"data":{"value":0.0123},"success":true}`))
	}))
	defer srv.Close()

	b := NewBirdeye(srv.URL, "key-abc")
	value, err := b.TokenPrice(context.Background(), "MintA")

	require.NoError(t, err)
	assert.Equal(t, 0.0123, value)
	assert.Equal(t, "/public/price", gotPath)
	assert.Equal(t, "key-abc", gotKey)
	assert.Equal(t, "MintA", gotAddress)
}

func TestTokenPrice_ZeroQuoteIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"value":0},"success":true}`))
	}))
	defer srv.Close()

	_, err := NewBirdeye(srv.URL, "").TokenPrice(context.Background(), "MintA")
	assert.True(t, errors.Is(err, ErrUnavailable), "zero quote must map to ErrUnavailable, got %v", err)
}

func TestTokenPrice_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewBirdeye(srv.URL, "").TokenPrice(context.Background(), "MintA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTokenPrice_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{garbage`))
	}))
	defer srv.Close()

	_, err := NewBirdeye(srv.URL, "").TokenPrice(context.Background(), "MintA")
	require.Error(t, err)
}

func TestDisabledProvider(t *testing.T) {
	_, err := Disabled{}.TokenPrice(context.Background(), "MintA")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
