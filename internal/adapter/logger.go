package adapter

import (
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
)

// restyLogger routes resty's internal messages into the service logger.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
