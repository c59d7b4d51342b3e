package handlers

import "net/http"

// HandleCapture authorizes and captures a card payment in one step.
func (h *Handlers) HandleCapture(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.service.Capture)
}
