package http

import (
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.appInfo.GetAppInfo(r.Context()), http.StatusOK)
}

func (h *Handler) getLanguages(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.LanguageOptions, http.StatusOK)
}
