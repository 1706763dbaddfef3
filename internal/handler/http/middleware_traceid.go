package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-flashcards/internal/utils"
)

var traceIDs = utils.NewUUIDGenerator()

// withTraceID takes the trace id from the X-Trace-ID header or generates one,
// echoes it back and puts it into the request context together with a child
// logger carrying a trace_id field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(r.Context(), traceID)
		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
