// Package apierrors centralizes error responses for the JSON API.
//
// Every handler error goes through an ErrorLogger method: the client
// gets the standard {"message": ...} envelope with a safe user-facing
// message, and the operational detail goes to the structured log.
package apierrors

import (
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// ErrorLogger writes JSON error responses and logs the underlying
// cause.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError responds 500 with userMsg and logs the error.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Error(logMsg, e.fields(r, err)...)
	httpjson.Message(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Warn(logMsg, e.fields(r, err)...)
	httpjson.Message(w, http.StatusBadRequest, userMsg)
}

// LogForbidden responds 403 with userMsg.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg, userMsg string) {
	e.log.Warn(logMsg, e.fields(r, nil)...)
	httpjson.Message(w, http.StatusForbidden, userMsg)
}

// LogUnauthorized responds 401 with userMsg.
func (e *ErrorLogger) LogUnauthorized(w http.ResponseWriter, r *http.Request, logMsg, userMsg string) {
	e.log.Warn(logMsg, e.fields(r, nil)...)
	httpjson.Message(w, http.StatusUnauthorized, userMsg)
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
