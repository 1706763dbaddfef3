// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// maxCardBodyBytes bounds card request bodies after decompression. Two
// 500-character sides, a 50-character language and the JSON framing fit well
// inside it even when every character takes four bytes.
const maxCardBodyBytes = 16 << 10

// limitBody caps the request body at maxCardBodyBytes.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxCardBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// bodyErrorResponse maps a body read or decode failure to a status and message.
func bodyErrorResponse(err error) (int, string) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	}
	return http.StatusBadRequest, msgInvalidBody
}
