package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and validates it, writing
// the 400 response itself when either step fails
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			response.BadRequest(w, fieldErrors(validationErrors))
			return false
		}
		response.BadRequest(w, err.Error())
		return false
	}
	return true
}

func fieldErrors(validationErrors validator.ValidationErrors) map[string]string {
	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "field is required"
		case "email":
			errs[field] = "invalid email format"
		case "url":
			errs[field] = "invalid url"
		case "min":
			errs[field] = "must be at least " + e.Param()
		case "max":
			errs[field] = "must be at most " + e.Param()
		case "oneof":
			errs[field] = "must be one of: " + e.Param()
		default:
			errs[field] = "validation failed on " + e.Tag()
		}
	}
	return errs
}
