package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds with v and status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// Error responds with status and message; fields lists per-field messages.
func Error(status int, message string, fields map[string][]string) Response {
	return jsonResponse{status: status, body: ErrorBody{Error: message, Fields: fields}}
}

type pngResponse struct {
	data     []byte
	filename string
}

func (p pngResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(p.data)))
	w.Header().Set("Content-Disposition", `inline; filename="`+p.filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(p.data)
	return err
}

// PNG responds with raw image bytes.
func PNG(data []byte, filename string) Response {
	return pngResponse{data: data, filename: filename}
}
