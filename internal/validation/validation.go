// Package validation checks editor input before the view dispatches it. The
// store itself accepts anything.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
}

// TodoForm is the todo editor's input.
type TodoForm struct {
	Title    string `validate:"notblank,max=200"`
	Notes    string `validate:"max=10000"`
	ListName string `validate:"notblank"`
}

// ListForm is the list editor's input.
type ListForm struct {
	Name  string `validate:"notblank,max=60"`
	Icon  string `validate:"required"`
	Color string `validate:"required,hexcolor"`
}

// Normalize trims the form the way the editor submits it.
func (f TodoForm) Normalize() TodoForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Notes = strings.TrimSpace(f.Notes)
	f.ListName = strings.TrimSpace(f.ListName)
	return f
}

func (f ListForm) Normalize() ListForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Icon = strings.TrimSpace(f.Icon)
	f.Color = strings.TrimSpace(f.Color)
	return f
}

// FieldError is the first failing rule of a form.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e FieldError) Error() string {
	field := strings.ToLower(e.Field)
	if field == "listname" {
		field = "list"
	}
	switch e.Rule {
	case "notblank", "required":
		return field + " must not be blank"
	case "max":
		return fmt.Sprintf("%s is too long (max %s)", field, e.Param)
	case "hexcolor":
		return field + " must be a hex colour like #F97275"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Rule)
	}
}

func Todo(f TodoForm) error { return check(f) }

func List(f ListForm) error { return check(f) }

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	return err
}
