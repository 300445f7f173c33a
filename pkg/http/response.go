package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse отправляет JSON-ответ с ошибкой вида {"error": "..."}.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// JSONResponse отправляет успешный JSON-ответ с указанным статусом.
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
