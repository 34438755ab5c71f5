// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// notFound replaces chi's plain-text 404 with the API's JSON error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "Not Found"}, http.StatusNotFound)
}

// methodNotAllowed answers requests whose path exists but whose method is not
// registered for it.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: "Method Not Allowed"}, http.StatusMethodNotAllowed)
}
