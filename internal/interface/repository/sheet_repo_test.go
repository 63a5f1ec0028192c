package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightboard-service/pkg/logger"
)

func TestFetchDocument_ReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Flight No,From,To\nAB123,CityX,CityY\n"))
	}))
	defer server.Close()

	repo := NewHTTPSheetRepository(server.URL, 5*time.Second, 0, logger.NewNop())

	body, err := repo.FetchDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Flight No,From,To\nAB123,CityX,CityY\n", body)
}

func TestFetchDocument_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := NewHTTPSheetRepository(server.URL, 5*time.Second, 3, logger.NewNop())

	_, err := repo.FetchDocument(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestFetchDocument_ServerErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewHTTPSheetRepository(server.URL, 5*time.Second, 0, logger.NewNop())

	_, err := repo.FetchDocument(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchDocument_ServerErrorRetriedUntilSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("header\n"))
	}))
	defer server.Close()

	repo := NewHTTPSheetRepository(server.URL, 5*time.Second, 2, logger.NewNop())

	body, err := repo.FetchDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "header\n", body)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestFetchDocument_NetworkErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo := NewHTTPSheetRepository(server.URL, time.Second, 0, logger.NewNop())

	_, err := repo.FetchDocument(context.Background())
	assert.Error(t, err)
}
