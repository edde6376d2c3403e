package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pets-api/internal/platform/httpclient"
	"pets-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{PageSize: 10}))
	t.Cleanup(ts.Close)
	return ts
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestPetctl_CRUD(t *testing.T) {
	ts := newAPI(t)

	out, err := run(t, "", "--base-url", ts.URL, "create", "--data",
		`{"name":"Luna","age":2,"weight":3.5,"group":{"scientific_name":"Felis catus"},"traits":[{"name":"Calm"}]}`)
	require.NoError(t, err, out)

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "Luna", created.Name)

	id := "1"
	require.Equal(t, int64(1), created.ID)

	// payload por stdin
	out, err = run(t, `{"age":4}`, "--base-url", ts.URL, "update", id)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"age": 4`)

	out, err = run(t, "", "--base-url", ts.URL, "get", id)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"name": "Luna"`)

	out, err = run(t, "", "--base-url", ts.URL, "list", "--trait", "Calm")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"count": 1`)

	out, err = run(t, "", "--base-url", ts.URL, "delete", id)
	require.NoError(t, err, out)
	assert.Equal(t, "deleted pet 1\n", out)

	_, err = run(t, "", "--base-url", ts.URL, "get", id)
	require.Error(t, err)
	assert.True(t, httpclient.IsNotFound(err))
}

func TestPetctl_ValidationErrorSurfaces(t *testing.T) {
	ts := newAPI(t)

	_, err := run(t, "", "--base-url", ts.URL, "create", "--data", `{}`)
	require.Error(t, err)

	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 400, he.StatusCode)
	assert.Contains(t, he.Body, "This field is required.")
}

func TestPetctl_BadInput(t *testing.T) {
	_, err := run(t, "", "--base-url", "http://localhost:1", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pet id")

	_, err = run(t, "", "--base-url", "http://localhost:1", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty payload")

	_, err = run(t, "{nope", "--base-url", "http://localhost:1", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestPetPath(t *testing.T) {
	p, err := petPath(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, "/pets/12/", p)

	_, err = petPath("0")
	require.Error(t, err)
}
