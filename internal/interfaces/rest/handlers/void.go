package handlers

import "net/http"

func (h *Handlers) HandleVoid(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.service.Void)
}
