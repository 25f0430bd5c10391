// Package validation implements the declarative request validation chains.
// Each endpoint category has a typed request body carrying its rules; the
// Body middleware binds, normalizes and checks it before the handler runs.
package validation

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the "Validation failed" envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Normalizer lets a request body clean itself up before validation. The
// normalized values are what the handler sees.
type Normalizer interface {
	Normalize()
}

// messager maps a failed field/tag pair to its fixed message.
type messager interface {
	message(field, tag string) string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("password", passwordComplexity)
	return v
}

// passwordComplexity requires at least one lowercase letter, one uppercase
// letter and one digit.
func passwordComplexity(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Check validates a request body and returns its field errors, if any.
func Check(req any) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "Invalid value"
		if m, ok := req.(messager); ok {
			msg = m.message(fe.Field(), fe.Tag())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

const bodyKey = "validated_body"

// Body binds the JSON body into T, normalizes it and runs its rule chain.
// On failure the request is aborted with the validation envelope and never
// reaches the handler.
func Body[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindJSON(req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if n, ok := any(req).(Normalizer); ok {
			n.Normalize()
		}
		if errs := Check(req); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed",
				"errors":  errs,
			})
			return
		}
		c.Set(bodyKey, req)
		c.Next()
	}
}

// FromContext returns the normalized body a Body[T] gate stashed earlier in
// the chain.
func FromContext[T any](c *gin.Context) *T {
	v, ok := c.Get(bodyKey)
	if !ok {
		return nil
	}
	req, _ := v.(*T)
	return req
}
