package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
)

const defaultStatus = http.StatusOK

// SafeResponseWriter records the status and byte count of a response, writes the
// header at most once, and drops writes once the request context is done.
//
//nolint:containedctx //The writer needs the request context to drop writes for cancelled requests.
type SafeResponseWriter struct {
	http.ResponseWriter
	ctx context.Context

	mu            sync.Mutex
	status        int
	headerWritten bool
	bytesSent     atomic.Int64
}

func NewSafeResponseWriter(ctx context.Context, w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         defaultStatus,
	}
}

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return
	}

	w.writeHeaderLocked(statusCode)
}

func (w *SafeResponseWriter) writeHeaderLocked(statusCode int) {
	if w.headerWritten {
		slog.Warn("Superfluous WriteHeader call ignored.", "status", statusCode, "written", w.status)
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		warnCtxErr(err)
		return 0, err
	}

	w.mu.Lock()
	if !w.headerWritten {
		w.writeHeaderLocked(defaultStatus)
	}
	w.mu.Unlock()

	n, err := w.ResponseWriter.Write(b)
	w.bytesSent.Add(int64(n))
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *SafeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *SafeResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	return int(w.bytesSent.Load())
}

func warnCtxErr(err error) {
	slog.Warn("Response dropped, request context is done.", "reason", err)
}
