package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("", 0)
	require.Error(t, err)

	_, err = New("ftp://example.com", 0)
	require.Error(t, err)

	c, err := New("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDoJSON_SendsBodyAndDecodes(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotCT, gotReqID string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get(RequestIDHeader)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":7,"name":"Luna"}`)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "pets/", url.Values{"x": {"1"}}, map[string]any{"name": "Luna"}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/pets/", gotPath)
	assert.Equal(t, "x=1", gotQuery)
	assert.Equal(t, "application/json", gotCT)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "Luna", gotBody["name"])
	assert.Equal(t, int64(7), out.ID)
}

func TestDoJSON_RawMessagePassesThrough(t *testing.T) {
	var raw []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodPatch, "/pets/1/", nil, json.RawMessage(`{"age":3}`), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":3}`, string(raw))
}

func TestDoJSON_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Not found"}`)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/pets/9/", nil, nil, nil)
	require.Error(t, err)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "Not found", he.Detail())
	assert.NotEmpty(t, he.RequestID)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "detail=Not found")
}

func TestHTTPError_NonDetailBody(t *testing.T) {
	he := &HTTPError{StatusCode: 400, Body: `{"name":["This field is required."]}`}
	assert.Equal(t, "", he.Detail())
	assert.Contains(t, he.Error(), "body=")
	assert.False(t, IsNotFound(he))
}
