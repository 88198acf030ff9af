package piston

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mradulpatle03/IDE/pkg/model"
)

func TestExecute(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/execute", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"run":{"stdout":"hi\n","stderr":"","output":"hi\n","code":0}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second)
	res, err := c.Execute(context.Background(), model.RunCodeReq{
		Language: "python",
		Version:  "3.10.0",
		Code:     `print("hi")`,
		Stdin:    "unused",
	})
	require.NoError(t, err)
	assert.Equal(t, "hi\n", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)

	// source travels as a files array, stdin rides alongside
	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	files := sent["files"].([]any)
	require.Len(t, files, 1)
	assert.Equal(t, `print("hi")`, files[0].(map[string]any)["content"])
	assert.Equal(t, "unused", sent["stdin"])
}

func TestExecute_APIMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"runtime is unknown"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Execute(context.Background(), model.RunCodeReq{Language: "cobol", Version: "1", Code: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime is unknown")
}

func TestExecute_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Execute(context.Background(), model.RunCodeReq{Language: "go", Version: "1", Code: "x"})
	assert.Error(t, err)
}

func TestRuntimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/runtimes", r.URL.Path)
		w.Write([]byte(`[{"language":"go","version":"1.22.0","aliases":["golang"]}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second)
	runtimes, err := c.Runtimes(context.Background())
	require.NoError(t, err)
	require.Len(t, runtimes, 1)
	assert.Equal(t, "go", runtimes[0].Language)
	assert.Equal(t, []string{"golang"}, runtimes[0].Aliases)
}
