package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"cadastro/internal/models"
)

// Issue is a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one validation pass,
// in field declaration order.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		paths = append(paths, issue.Path)
	}
	return fmt.Sprintf("validation failed on: %s", strings.Join(paths, ", "))
}

// Validator checks user payloads against the per-operation constraint sets.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Error paths use the JSON field names so issues
// map directly onto the request payload.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateCreate checks a create payload and returns the normalized DTO
// with the status default applied, or a ValidationError listing every
// violation.
func (v *Validator) ValidateCreate(in models.CreateUserInput) (models.CreateUserInput, error) {
	if err := v.check(in); err != nil {
		return models.CreateUserInput{}, err
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	return in, nil
}

// ValidateUpdate checks a partial update payload. Only supplied fields are
// validated; an empty payload is valid.
func (v *Validator) ValidateUpdate(in models.UpdateUserInput) (models.UpdateUserInput, error) {
	if err := v.check(in); err != nil {
		return models.UpdateUserInput{}, err
	}
	return in, nil
}

// check runs the validator and converts its errors into a ValidationError.
// Validation does not short-circuit: all violations from one pass are
// collected together.
func (v *Validator) check(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Path: fe.Field(), Message: message(fe)})
	}
	return &ValidationError{Issues: issues}
}

// message renders a human-readable message for a failed constraint.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "email":
		return "Invalid email"
	case "oneof":
		return fmt.Sprintf("Invalid value. Expected one of: %s", strings.Join(strings.Fields(fe.Param()), " | "))
	default:
		return fmt.Sprintf("Failed on the '%s' constraint", fe.Tag())
	}
}
