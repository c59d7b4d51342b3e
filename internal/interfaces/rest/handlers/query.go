package handlers

import (
	"net/http"

	"github.com/DanielPopoola/anet-transactions/internal/application"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

func (h *Handlers) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	var transactionID string
	err := runtime.BindStyledParameterWithOptions("simple", "transactionId", r.PathValue("transactionId"), &transactionID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	details, err := h.service.Lookup(r.Context(), transactionID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToDetailsResponse(details))
}
