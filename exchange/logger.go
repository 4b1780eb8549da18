package exchange

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/HexmosTech/httpie-lite/logging"
)

// restyLogger forwards resty's printf-style logging to slog.
type restyLogger struct {
	logger *slog.Logger
}

func newRestyLogger(logger *slog.Logger) *restyLogger {
	return &restyLogger{logger: logging.WithComponent(logger, "resty")}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(message(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(message(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(message(format, v...))
}

func message(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
