package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/adpoint-gateway/internal/logger"
)

// serverErrorWriter forwards net/http's internal error log (TLS handshake
// failures, panics outside handlers, ...) to zerolog.
type serverErrorWriter struct {
	logger *logger.Logger
}

func (w serverErrorWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("source", "net/http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

func newServerErrorLog(logger *logger.Logger) *log.Logger {
	return log.New(serverErrorWriter{logger: logger}, "", 0)
}
