package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.pdf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpload(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewObjectStore(srv.URL, "jobvista-public", "https://cdn.example.com", 5*time.Second)

	url, err := store.Upload(context.Background(), writeTempFile(t, "file-bytes"), "My CV.PDF", "application/pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/jobvista-public/") {
		t.Fatalf("uploaded to %q, want bucket prefix", gotPath)
	}
	if !strings.HasSuffix(gotPath, ".pdf") {
		t.Fatalf("key %q should keep the lowercased extension", gotPath)
	}
	if gotContentType != "application/pdf" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotBody != "file-bytes" {
		t.Fatalf("body = %q", gotBody)
	}
	if !strings.HasPrefix(url, "https://cdn.example.com/jobvista-public/") {
		t.Fatalf("public url = %q", url)
	}
	if !strings.HasSuffix(url, filepath.Base(gotPath)) {
		t.Fatalf("public url %q does not point at the uploaded key %q", url, gotPath)
	}
}

func TestUploadUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	store := NewObjectStore(srv.URL, "bucket", "", 5*time.Second)

	_, err := store.Upload(context.Background(), writeTempFile(t, "x"), "a.png", "image/png")
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
}

func TestUploadMissingFile(t *testing.T) {
	store := NewObjectStore("http://localhost:1", "bucket", "", time.Second)

	_, err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "missing"), "a.png", "image/png")
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
}

func TestSanitizeExt(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"cv.pdf", ".pdf"},
		{"CV.PDF", ".pdf"},
		{"noext", ""},
		{"weird.averylongextension", ""},
	}
	for _, tc := range cases {
		if got := sanitizeExt(tc.name); got != tc.want {
			t.Errorf("sanitizeExt(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
