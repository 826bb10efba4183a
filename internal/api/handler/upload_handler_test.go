package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type stubUploadSigner struct {
	lastKey         string
	lastContentType string
}

func (s *stubUploadSigner) SignUpload(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	s.lastKey = key
	s.lastContentType = contentType
	return "https://storage.test/upload/" + key, nil
}

func (s *stubUploadSigner) SignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + key, nil
}

func (s *stubUploadSigner) DeleteObject(_ context.Context, _ string) error {
	return nil
}

func TestUploadHandler_Create(t *testing.T) {
	e := newTestEcho()
	signer := &stubUploadSigner{}
	h := NewUploadHandler(signer, time.Hour)

	req := jsonRequest(http.MethodPost, "/upload", `{"fileName":"intro.mp4","contentType":"video/mp4"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.HasPrefix(resp.Key, "aulas/") || !strings.HasSuffix(resp.Key, "-intro.mp4") {
		t.Fatalf("unexpected key: %q", resp.Key)
	}
	if resp.Key != signer.lastKey {
		t.Fatalf("key mismatch: %q vs %q", resp.Key, signer.lastKey)
	}
	if signer.lastContentType != "video/mp4" {
		t.Fatalf("unexpected content type: %q", signer.lastContentType)
	}
	if resp.UploadURL != "https://storage.test/upload/"+resp.Key {
		t.Fatalf("unexpected upload url: %q", resp.UploadURL)
	}
}

func TestUploadHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewUploadHandler(&stubUploadSigner{}, time.Hour)

	req := jsonRequest(http.MethodPost, "/upload", `{"fileName":"intro.mp4"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
