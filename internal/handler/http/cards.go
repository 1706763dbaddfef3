// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cards, err := h.cards.ListCards(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCards").Msg("error listing cards")
		status, msg := errorResponse(err, msgFetchCardsFailed)
		utils.WriteError(w, msg, status)
		return
	}
	if cards == nil {
		cards = []models.FlashCard{}
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.CardFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Str("func", "*Handler.createCard").Msg("invalid JSON was passed")
		status, msg := bodyErrorResponse(err)
		utils.WriteError(w, msg, status)
		return
	}

	card, err := h.cards.CreateCard(r.Context(), fields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCard").Msg("error creating card")
		status, msg := errorResponse(err, msgCreateFailed)
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := cardIDFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getCard").Send()
		utils.WriteError(w, msgInvalidCardID, http.StatusBadRequest)
		return
	}

	card, err := h.cards.GetCard(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCard").Int64("card_id", id).Msg("error getting card")
		status, msg := errorResponse(err, msgFetchCardFailed)
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := cardIDFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.updateCard").Send()
		utils.WriteError(w, msgInvalidCardID, http.StatusBadRequest)
		return
	}

	var fields models.CardFields
	if err = json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Str("func", "*Handler.updateCard").Msg("invalid JSON was passed")
		status, msg := bodyErrorResponse(err)
		utils.WriteError(w, msg, status)
		return
	}

	card, err := h.cards.UpdateCard(r.Context(), id, fields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCard").Int64("card_id", id).Msg("error updating card")
		status, msg := errorResponse(err, msgUpdateFailed)
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := cardIDFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.deleteCard").Send()
		utils.WriteError(w, msgInvalidCardID, http.StatusBadRequest)
		return
	}

	if err = h.cards.DeleteCard(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCard").Int64("card_id", id).Msg("error deleting card")
		status, msg := errorResponse(err, msgDeleteFailed)
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgCardDeleted}, http.StatusOK)
}

func cardIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidCardID
	}
	return id, nil
}
