package httpserver

import (
	"encoding/json"
	"net/http"
)

// WriteJSON пишет тело ответа в JSON с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
