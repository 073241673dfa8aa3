package middlewares

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/tx"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// buffered: a status below 400 commits and then flushes it, anything else rolls
// back. A failed commit replaces the response with 500. After-commit hooks run
// once the response has been sent.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dbTx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.FromContext(r.Context()).Errorw("failed to begin transaction", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := tx.WithTx(r.Context(), dbTx)

			defer func() {
				if rec := recover(); rec != nil {
					_ = dbTx.Rollback()
					tx.DiscardHooks(ctx)
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: w.Header(), status: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.status >= http.StatusBadRequest {
				if err := dbTx.Rollback(); err != nil {
					logger.FromContext(r.Context()).Errorw("failed to roll back transaction", "error", err)
				}
				tx.DiscardHooks(ctx)
				buf.flush(w)
				return
			}

			if err := dbTx.Commit(); err != nil {
				logger.FromContext(r.Context()).Errorw("failed to commit transaction", "error", err)
				tx.DiscardHooks(ctx)
				w.Header().Del("Content-Length")
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			buf.flush(w)
			if err := http.NewResponseController(w).Flush(); err != nil {
				logger.FromContext(ctx).Debugw("response not flushed before hooks", "error", err)
			}
			tx.RunHooks(ctx)
		})
	}
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	// a known length lets the client finish reading before hooks complete
	w.Header().Set("Content-Length", strconv.Itoa(b.body.Len()))
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}
