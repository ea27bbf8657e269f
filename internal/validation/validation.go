// Package validation checks user supplied values with go-playground/validator and
// English error descriptions.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// codeRegex matches class and field codes: a letter followed by letters, digits,
// underscores or hyphens.
var codeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var (
	defaultValidator = validator.New()
	defaultEn        = en.New()
	uni              = ut.New(defaultEn, defaultEn)
	trans, _         = uni.GetTranslator(defaultEn.Locale())
)

// Violation is a single failed rule.
type Violation struct {
	Tag         string
	Field       string
	Err         error
	Description string
}

func (v Violation) Error() string {
	return v.Description
}

func (v Violation) Unwrap() error {
	return v.Err
}

// StructError holds every violation found in a struct.
type StructError struct {
	Violations []Violation
}

func (s *StructError) Error() string {
	msgs := make([]string, 0, len(s.Violations))
	for _, v := range s.Violations {
		msgs = append(msgs, v.Description)
	}
	return strings.Join(msgs, "; ")
}

// ValidateValue validates v against the comma separated rules in tag.
// name is used in the description, e.g. "field must be a valid code".
func ValidateValue(name string, v any, tag string) error {
	err := defaultValidator.Var(v, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	return Violation{
		Tag:   e.Tag(),
		Field: name,
		Err:   e,
		// Var errors carry no field name; the translation starts with an empty one.
		Description: name + e.Translate(trans),
	}
}

// ValidateStruct validates the `validate` tags of s. Fields are named after their json tag.
func ValidateStruct(s any) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	structErr := &StructError{}
	for _, e := range verrs {
		structErr.Violations = append(structErr.Violations, Violation{
			Tag:         e.Tag(),
			Field:       e.Field(),
			Err:         e,
			Description: e.Translate(trans),
		})
	}
	return structErr
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func init() {
	defaultValidator.RegisterTagNameFunc(jsonName)

	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		panic(fmt.Sprintf("validation: register default translations: %v", err))
	}

	if err := defaultValidator.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return codeRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validation: register code rule: %v", err))
	}
	if err := defaultValidator.RegisterTranslation("code", trans,
		func(t ut.Translator) error {
			return t.Add("code", "{0} must start with a letter and only contain letters, numbers, underscore and hyphen", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("code", fe.Field())
			return msg
		},
	); err != nil {
		panic(fmt.Sprintf("validation: register code translation: %v", err))
	}
}
