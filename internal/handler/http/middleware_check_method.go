// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a MethodNotAllowed handler for router that answers
// 404 instead of chi's 405, so probing GET /telegram/webhook reveals nothing
// about the route. Requests whose method is registered for the exact path
// are passed back to router.
//
// Nested routers are searched as well; only literal patterns are compared.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegistered(router.Routes(), "", r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func methodRegistered(routes []chi.Route, prefix, path, method string) bool {
	for _, route := range routes {
		if route.SubRoutes != nil {
			sub := prefix + trimWildcard(route.Pattern)
			if methodRegistered(route.SubRoutes.Routes(), sub, path, method) {
				return true
			}
			continue
		}

		if prefix+route.Pattern != path {
			continue
		}
		if _, ok := route.Handlers[method]; ok {
			return true
		}
	}

	return false
}

// trimWildcard strips the "/*" chi appends to mounted sub-router patterns.
func trimWildcard(pattern string) string {
	if len(pattern) >= 2 && pattern[len(pattern)-2:] == "/*" {
		return pattern[:len(pattern)-2]
	}
	return pattern
}
