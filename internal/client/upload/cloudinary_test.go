package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	img := filepath.Join(t.TempDir(), "latte.png")
	require.NoError(t, os.WriteFile(img, []byte("fake-png-bytes"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/talk-addictive/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "cafe-management", r.FormValue("upload_preset"))
		require.Equal(t, "talk-addictive", r.FormValue("cloud_name"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "latte.png", hdr.Filename)

		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/latte.png"}`))
	}))
	defer srv.Close()

	u := NewWithBaseURL(srv.URL, "talk-addictive", "cafe-management")
	url, err := u.Upload(context.Background(), img)
	require.NoError(t, err)
	require.Equal(t, "https://res.example.com/latte.png", url)
}

func TestUpload_ServerFailure(t *testing.T) {
	img := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusBadRequest)
	}))
	defer srv.Close()

	u := NewWithBaseURL(srv.URL, "cloud", "preset")
	_, err := u.Upload(context.Background(), img)
	require.Error(t, err)
	require.Contains(t, err.Error(), "upload failed")
}

func TestUpload_MissingFile(t *testing.T) {
	u := New("cloud", "preset")
	_, err := u.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestUpload_MissingSecureURL(t *testing.T) {
	img := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	u := NewWithBaseURL(srv.URL, "cloud", "preset")
	_, err := u.Upload(context.Background(), img)
	require.Error(t, err)
	require.Contains(t, err.Error(), "secure_url")
}
