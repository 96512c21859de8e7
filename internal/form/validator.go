// Package form turns a URL-form-encoded contact submission into a
// models.SubmissionRequest.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"contactform-backend/models"

	"github.com/go-playground/validator/v10"
)

// ResponseKey is the form field carrying the reCAPTCHA token
const ResponseKey = "g-recaptcha-response"

// contactForm mirrors the submitted fields. Field order decides which
// missing field is reported first.
type contactForm struct {
	Name         string `form:"name" validate:"required"`
	Email        string `form:"email" validate:"required"`
	Body         string `form:"body" validate:"required"`
	CaptchaToken string `form:"g-recaptcha-response"`
}

// Validator parses and checks contact form bodies
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a form validator
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return &Validator{validate: v}
}

// Validate parses rawBody and returns the submission, or a MissingField
// error naming the first absent required field.
func (v *Validator) Validate(sourceIP, rawBody string) (*models.SubmissionRequest, error) {
	// ParseQuery keeps every pair it could decode; a malformed pair is
	// reported below as whichever required field it hid.
	values, _ := url.ParseQuery(rawBody)

	f := contactForm{
		Name:         values.Get("name"),
		Email:        values.Get("email"),
		Body:         values.Get("body"),
		CaptchaToken: values.Get(ResponseKey),
	}

	if err := v.validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, models.MissingField(fieldErrs[0].Field())
		}
		return nil, fmt.Errorf("validate contact form: %w", err)
	}

	return &models.SubmissionRequest{
		SourceIP:     sourceIP,
		Name:         f.Name,
		Email:        f.Email,
		Body:         f.Body,
		CaptchaToken: f.CaptchaToken,
	}, nil
}
