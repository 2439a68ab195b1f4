// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names so issues line up with the persisted field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldIssue is an advisory problem with a single field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldIssue) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Validate checks the email and URL fields. Issues are advisory; the model
// accepts any string.
func (p PersonalInfo) Validate() []FieldIssue {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: "personalInfo", Message: err.Error()}}
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Please enter a valid email address"
	case "url":
		return "Please enter a valid URL"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
