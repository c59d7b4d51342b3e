package handlers

import "net/http"

// HandleRefund credits a settled transaction.
func (h *Handlers) HandleRefund(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.service.Refund)
}

// HandleSmartRefund refunds a settled transaction and voids an unsettled one.
func (h *Handlers) HandleSmartRefund(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.service.SmartRefund)
}
