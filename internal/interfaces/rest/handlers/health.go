package handlers

import (
	"net/http"

	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
)

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(rest.OpenAPIDocument())
}
