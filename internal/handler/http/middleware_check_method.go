// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches but the method does not. This handler
// answers 404 instead, so that callers using an unsupported method cannot
// tell the route exists. If the method is in fact registered for the exact
// pattern, the request is handed back to the router.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
