// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/go-chi/chi/v5"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// It answers 405 with the JSON error body and an Allow header listing the
// methods the matched route does support.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		for _, method := range allowed {
			w.Header().Add("Allow", method)
		}

		writeStatus(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

// notFound is registered as the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}

// allowedMethods returns the methods registered for path. A pattern matches
// when chi would route path to it.
func allowedMethods(router *chi.Mux, path string) []string {
	methods := make([]string, 0, 4)
	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete,
	} {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, method, path) {
			methods = append(methods, method)
		}
	}
	return methods
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, errorResponse{Status: statusError, Message: message}, status)
}
