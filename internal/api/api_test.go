package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leojp04/drarea/internal/api"
)

func TestGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/usuarios", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","email":"a@x.com"}]`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	var out []map[string]any
	require.NoError(t, c.Get(context.Background(), "/usuarios", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "a@x.com", out[0]["email"])
}

func TestNotFoundCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	err := c.Get(context.Background(), "/consultas/nope", &struct{}{})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "not found", apiErr.Body)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	err := c.Post(context.Background(), "/usuarios", map[string]string{"email": "a@x.com"}, nil)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotEmpty(t, apiErr.Body)
}

func TestNoContentSkipsDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	var out map[string]any
	require.NoError(t, c.Patch(context.Background(), "/consultas/1", map[string]string{"status": "cancelada"}, &out))
	assert.Nil(t, out)
}

func TestNetworkFailureHasZeroStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := api.New(srv.URL, nil)
	err := c.Get(context.Background(), "/usuarios", &struct{}{})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Error(t, apiErr.Unwrap())
}

func TestDeleteSendsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	require.NoError(t, c.Delete(context.Background(), "/usuarios/1"))
}
