// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
)

// verifySignature checks the HashSHA256 header against the HMAC-SHA256 of the
// request body. It is a pass-through when the server has no hash key or the
// request carries no signature.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(utils.SignatureHeader)
		if h.hashKey == "" || signature == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			status, msg := bodyErrorResponse(err)
			utils.WriteError(w, msg, status)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, signature, h.hashKey) {
			log.Error().Str("func", "*Handler.verifySignature").
				Str("signature", signature).
				Msg("request signature mismatch")
			utils.WriteError(w, msgIntegrityFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
