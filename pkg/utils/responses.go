package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every API reply.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// ResponseSuccess writes 200 with data.
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeEnvelope(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// ResponseCreated writes 201 with the created resource.
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeEnvelope(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ResponseError writes a failed envelope with any status code. details is
// usually a list of field errors and may be nil.
func ResponseError(w http.ResponseWriter, code int, message string, details any) {
	writeEnvelope(w, code, Response{Status: false, Message: message, Errors: details})
}

func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseError(w, http.StatusBadRequest, message, details)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
