package backup

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/config"
)

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := &config.AppConfig{Paths: config.RuntimePathsConfig{Backups: dir}}
	return NewHandler(NewService(nil, cfg)), dir
}

func performFilenameRequest(h func(*gin.Context), method, filename string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", nil)
	c.Params = gin.Params{{Key: "filename", Value: filename}}
	h(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestRollbackRejectsNonZipFilename(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performFilenameRequest(h.rollback, http.MethodPatch, "backup.tar.gz")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRollbackMissingArchive(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performFilenameRequest(h.rollback, http.MethodPatch, "backup-missing.zip")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteRejectsNonZipFilename(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performFilenameRequest(h.deleteOne, http.MethodDelete, "../../etc/passwd")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDeleteMissingArchive(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performFilenameRequest(h.deleteOne, http.MethodDelete, "backup-missing.zip")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteExistingArchive(t *testing.T) {
	h, dir := newTestHandler(t)

	target := filepath.Join(dir, "backup-old.zip")
	if err := os.WriteFile(target, []byte("zip"), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	w := performFilenameRequest(h.deleteOne, http.MethodDelete, "backup-old.zip")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("archive should have been removed")
	}
}
