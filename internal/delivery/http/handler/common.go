package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"mentecare-backend/internal/delivery/http/middleware"
	"mentecare-backend/internal/usecase"
	"mentecare-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// ErrorResponder writes the generic 500 response. Raw error text is only
// attached when exposeDetails is set (development).
type ErrorResponder struct {
	log           *logrus.Logger
	exposeDetails bool
}

func NewErrorResponder(log *logrus.Logger, exposeDetails bool) *ErrorResponder {
	return &ErrorResponder{log: log, exposeDetails: exposeDetails}
}

func (e *ErrorResponder) Internal(w http.ResponseWriter, r *http.Request, err error) {
	e.log.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestIDFromContext(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	}).Errorf("Unhandled error: %+v", err)

	var detail interface{}
	if e.exposeDetails && err != nil {
		detail = err.Error()
	}
	response.Error(w, http.StatusInternalServerError, "Internal server error", detail)
}

// writeValidationError handles *usecase.ValidationError and reports
// whether err was one.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(w, verr.Fields)
		return true
	}
	return false
}

// decodeJSON reads a JSON body into dst. With strict set, fields outside
// dst are rejected. An empty body is an error unless allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, strict, allowEmpty bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return true
		}
		if field, ok := unknownField(err); ok {
			response.ValidationError(w, map[string]string{field: field + " is not an accepted field"})
			return false
		}
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// unknownField extracts the field name from encoding/json's
// DisallowUnknownFields error.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field "`
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, prefix), `"`), true
}

func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	userType, _ := middleware.GetUserTypeFromContext(r.Context())
	return usecase.Actor{UserID: userID, UserType: userType}, true
}
