// Package bind decodes a JSON request body into a form and validates it.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/validate"
)

// Normalizer is implemented by forms that tidy their input (trimming
// whitespace and the like) before validation.
type Normalizer interface {
	Normalize()
}

// JSON decodes r.Body into dest, normalizes it when dest is a Normalizer and
// runs the `validate` tags.
//
// A malformed or oversized body yields (nil, err); failed validation yields
// (errs, nil). An empty body decodes as {} so that defaults set on dest
// before the call survive and required fields are reported.
func JSON(r *http.Request, dest any) (map[string]string, error) {
	if r.Body != nil && r.Body != http.NoBody {
		body := http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())
		if err := json.NewDecoder(body).Decode(dest); err != nil {
			var maxErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxErr):
				return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
			case errors.Is(err, io.EOF):
			default:
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
		}
	}

	if n, ok := dest.(Normalizer); ok {
		n.Normalize()
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
