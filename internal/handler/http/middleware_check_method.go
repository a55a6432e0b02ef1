// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A path that exists but is requested with a method it does not serve is
// answered like an unknown path: 404 with {"detail": "Not Found"} instead of
// chi's bare 405. Requests whose method does resolve through [chi.Mux.Match]
// are handed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
}
