// Package server is a GET-only static file server for the web build of the
// art modules.
package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"github.com/san-kum/artgen/internal/logging"
)

const (
	DefaultAddr = ":8080"
	indexFile   = "index.html"
	sniffLen    = 262
	octetStream = "application/octet-stream"

	shutdownTimeout = 5 * time.Second
)

var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".wasm": "application/wasm",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".ico":  "image/x-icon",
	".json": "application/json",
}

const notFoundBody = "<html><head><title>404 Not Found</title></head>" +
	"<body style='text-align:center;font-family:sans-serif;'>" +
	"<h1>404 Not Found</h1><p>The requested file was not found.</p>" +
	"</body></html>"

// ContentType maps a path to a MIME type by extension. Extensions outside
// the built-in table are looked up in filetype's registry, then the content
// head is sniffed; anything else is application/octet-stream.
func ContentType(path string, head []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ext != "" {
		if t := filetype.GetType(strings.TrimPrefix(ext, ".")); t != filetype.Unknown {
			return t.MIME.Value
		}
	}
	if len(head) > 0 {
		if t, err := filetype.Match(head); err == nil && t != filetype.Unknown {
			return t.MIME.Value
		}
	}
	return octetStream
}

// Server serves files below Root.
type Server struct {
	Root string
	Addr string
	log  *slog.Logger
}

func New(root, addr string, log *slog.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{Root: root, Addr: addr, log: logging.OrNop(log)}
}

// resolve maps a request path to a file below Root. ok is false for
// traversal attempts.
func (s *Server) resolve(urlPath string) (string, bool) {
	if strings.Contains(urlPath, "..") {
		return "", false
	}
	if urlPath == "/" || urlPath == "" {
		return filepath.Join(s.Root, indexFile), true
	}
	rel := filepath.FromSlash(strings.TrimPrefix(urlPath, "/"))
	return filepath.Join(s.Root, rel), true
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.serve(rec, r)
	s.log.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"bytes", rec.bytes,
		"elapsed", time.Since(start),
	)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Connection", "close")

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path, ok := s.resolve(r.URL.Path)
	if !ok {
		s.log.Warn("traversal rejected", "path", r.URL.Path)
		notFound(w)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		notFound(w)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notFound(w)
			return
		}
		s.log.Error("read file", "path", path, "err", err)
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
		return
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	h := w.Header()
	h.Set("Content-Type", ContentType(path, head))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("Cache-Control", "public, max-age=3600")
	h.Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Length", strconv.Itoa(len(notFoundBody)))
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundBody))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.SetKeepAlivesEnabled(false)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("serving", "addr", ln.Addr().String(), "root", s.Root)
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
