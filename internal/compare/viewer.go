package compare

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
)

// Viewer serves a rendered chart over HTTP so it can be opened in a browser.
type Viewer struct {
	fsys        fsutil.FileSystem
	path        string
	contentType string
	manifest    Manifest
	logger      *log.Logger
}

// NewViewer serves the chart written by a run. The run summary is served at
// /summary as the manifest WriteManifest would write for createdAt.
func NewViewer(fsys fsutil.FileSystem, res *Result, createdAt time.Time, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.Default()
	}
	return &Viewer{
		fsys:        fsys,
		path:        res.OutputPath,
		contentType: res.ContentType,
		manifest:    res.Manifest(createdAt),
		logger:      logger,
	}
}

// ServeHTTP answers GET / with the chart and GET /summary with the run
// summary.
func (v *Viewer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		v.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch r.URL.Path {
	case "/":
		v.serveChart(w)
	case "/summary":
		v.writeJSON(w, http.StatusOK, v.manifest)
	default:
		v.writeJSONError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	}
}

func (v *Viewer) serveChart(w http.ResponseWriter) {
	data, err := v.fsys.ReadFile(v.path)
	if err != nil {
		v.logger.Printf("viewer: read %s: %v", v.path, err)
		v.writeJSONError(w, http.StatusInternalServerError, "chart unavailable")
		return
	}

	w.Header().Set("Content-Type", v.contentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// Serve listens on addr and blocks until ctx is cancelled or the listener
// fails.
func (v *Viewer) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           v,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	v.logger.Printf("Serving chart %s on http://%s/ (Ctrl-C to exit)", v.path, addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		v.logger.Printf("viewer shutdown error: %v", err)
		return server.Close()
	}
	return nil
}

func (v *Viewer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		v.logger.Printf("viewer: encode response: %v", err)
	}
}

func (v *Viewer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	v.writeJSON(w, status, map[string]string{"error": msg})
}
