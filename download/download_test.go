package download_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/bioqueries/ontograph/download"
)

func quietClient(t *testing.T, dir string, opts ...download.Option) *download.Client {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	c, err := download.NewClient(dir, append([]download.Option{download.WithLogger(log)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestFetch_DownloadsAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "format-version: 1.2\n")
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := quietClient(t, dir)

	path, err := c.Fetch(context.Background(), srv.URL+"/tiny.obo", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tiny.obo"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "format-version: 1.2\n", string(data))

	// Second fetch is served from the cache.
	again, err := c.Fetch(context.Background(), srv.URL+"/tiny.obo", "")
	require.NoError(t, err)
	require.Equal(t, path, again)
	require.Equal(t, int32(1), hits.Load())

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFetch_Force(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "payload")
	}))
	defer srv.Close()

	c := quietClient(t, t.TempDir(), download.WithForce())
	_, err := c.Fetch(context.Background(), srv.URL+"/f.obo", "f.obo")
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), srv.URL+"/f.obo", "f.obo")
	require.NoError(t, err)
	require.Equal(t, int32(2), hits.Load())
}

func TestFetch_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := quietClient(t, t.TempDir())

	_, err := c.Fetch(context.Background(), "", "x")
	require.ErrorIs(t, err, download.ErrEmptyURL)

	_, err = c.Fetch(context.Background(), srv.URL+"/missing.obo", "")
	require.ErrorIs(t, err, download.ErrBadStatus)

	// Nothing cached on failure.
	entries, err := os.ReadDir(c.CacheDir())
	if err == nil {
		require.Empty(t, entries)
	}
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "body of %s", r.URL.Path)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := quietClient(t, dir, download.WithConcurrency(2))

	paths, err := c.FetchAll(context.Background(), []download.Resource{
		{URL: srv.URL + "/a.obo"},
		{URL: srv.URL + "/b.obo", Filename: "renamed.obo"},
		{URL: srv.URL + "/c.obo"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.obo"),
		filepath.Join(dir, "renamed.obo"),
		filepath.Join(dir, "c.obo"),
	}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	require.Equal(t, "body of /b.obo", string(data))
}

func TestFetchAll_FirstErrorWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.obo" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	c := quietClient(t, t.TempDir())
	_, err := c.FetchAll(context.Background(), []download.Resource{
		{URL: srv.URL + "/good.obo"},
		{URL: srv.URL + "/bad.obo"},
	})
	require.ErrorIs(t, err, download.ErrBadStatus)
}
