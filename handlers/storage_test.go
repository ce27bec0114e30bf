package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// fakeStorage records the buffered paths handed to it.
type fakeStorage struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeStorage) UploadFile(_ context.Context, localFilePath, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, localFilePath)
	return fmt.Sprintf("file-%d", len(f.paths)), nil
}

func (f *fakeStorage) DeleteFile(context.Context, string) error { return nil }

func (f *fakeStorage) GetDownloadURL(context.Context, string, string) (string, error) {
	return "", nil
}

func (f *fakeStorage) GetSecureDownloadURL(context.Context, string, string, time.Duration) (string, error) {
	return "https://files.example/signed", nil
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadRouter(hb *HandlerBundle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/documents", func(c *gin.Context) { c.Set("userID", "user-1") }, hb.UploadDocument)
	return r
}

func TestUploadDocumentBuffersEachFileSeparately(t *testing.T) {
	store := &fakeStorage{}
	r := uploadRouter(&HandlerBundle{Storage: store})

	// Concurrent uploads sharing a client filename must not clobber each
	// other's buffer file.
	const workers = 4
	requests := make([]*http.Request, workers)
	for i := range requests {
		requests[i] = uploadRequest(t, "notes.pdf", fmt.Sprintf("content-%d", i))
	}

	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, requests[i])
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Errorf("upload %d returned %d, want %d", i, code, http.StatusCreated)
		}
	}

	seen := make(map[string]bool)
	for _, p := range store.paths {
		if seen[p] {
			t.Fatalf("two uploads buffered through the same temp file %s", p)
		}
		seen[p] = true
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct buffer files, got %d", workers, len(seen))
	}
}

func TestUploadDocumentRequiresConfiguredStorage(t *testing.T) {
	r := uploadRouter(&HandlerBundle{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "notes.pdf", "x"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
