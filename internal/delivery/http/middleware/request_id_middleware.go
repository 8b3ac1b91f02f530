package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RequestIDMiddleware struct {
	log *logrus.Logger
}

func NewRequestIDMiddleware(log *logrus.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{log: log}
}

// Handle tags every request with a request id, echoed in the response
// header and attached to the request log line.
func (m *RequestIDMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Info("Request received")

		next.ServeHTTP(w, r)
	})
}
