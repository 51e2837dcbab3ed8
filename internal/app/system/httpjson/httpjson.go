// Package httpjson writes the JSON envelope used by every API endpoint:
// {"success": true, "data": ...} on success and {"success": false,
// "error": "..."} on failure, with field details for validation errors.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

type envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Pagination any                 `json:"pagination,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes 200 with a data payload.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes 201 with a data payload.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// OKPaged writes 200 with a data payload and a pagination block.
func OKPaged(w http.ResponseWriter, data, pagination any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: pagination})
}

// Message writes 200 with a human-readable message and no data.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, envelope{Success: true, Message: msg})
}

// BadRequest writes 400 with the given error text.
func BadRequest(w http.ResponseWriter, msg string) {
	write(w, http.StatusBadRequest, envelope{Success: false, Error: msg})
}

// NotFound writes 404 with the given error text.
func NotFound(w http.ResponseWriter, msg string) {
	write(w, http.StatusNotFound, envelope{Success: false, Error: msg})
}

// Conflict writes 409 with the given error text.
func Conflict(w http.ResponseWriter, msg string) {
	write(w, http.StatusConflict, envelope{Success: false, Error: msg})
}

// Fail maps a store error to its status code and writes the envelope.
// Unrecognized errors become a sanitized 500; the detail goes to the
// logger only.
func Fail(w http.ResponseWriter, log *zap.Logger, context string, err error) {
	if v, ok := apperr.AsValidation(err); ok {
		write(w, http.StatusBadRequest, envelope{Success: false, Error: "validation failed", Errors: v.Fields})
		return
	}
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		write(w, http.StatusNotFound, envelope{Success: false, Error: "not found"})
	case errors.Is(err, apperr.ErrChildNotFound):
		write(w, http.StatusNotFound, envelope{Success: false, Error: "parent or child not found"})
	case errors.Is(err, apperr.ErrConflict):
		write(w, http.StatusConflict, envelope{Success: false, Error: "already exists"})
	case errors.Is(err, apperr.ErrUnauthorized):
		write(w, http.StatusUnauthorized, envelope{Success: false, Error: "invalid username or password"})
	default:
		if log != nil {
			log.Error(context, zap.Error(err))
		}
		write(w, http.StatusInternalServerError, envelope{Success: false, Error: "internal server error"})
	}
}
