// Package controllers adapts the storefront services to the JSON HTTP API.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// decode binds the JSON body into v and answers 400 or 422 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	errs, err := bind.JSON(r, v)
	if err != nil {
		response.BadRequest(w, err.Error())
		return false
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return false
	}
	return true
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		response.BadRequest(w, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	if n, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil {
		return n
	}
	return fallback
}

// fail logs err against the request and answers 500.
func fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.WithCtx(r.Context()).Error(msg, "error", err)
	response.ServerError(w)
}
