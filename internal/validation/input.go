package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/utils"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Error is returned when user input fails validation. The CLI prints every
// field message through Problems.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Message
	}
	return "invalid input: " + strings.Join(e.Problems(), "; ")
}

// Problems lists the field messages in declaration order.
func (e *Error) Problems() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "pin", isPin)
		mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
			return utils.ValidateTimeFormat(fl.Field().String())
		})
		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
			return utils.ValidateDate(fl.Field().String())
		})
		mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func isPin(fl validator.FieldLevel) bool {
	return IsPin(fl.Field().String())
}

// IsPin reports whether s is exactly four ASCII digits.
func IsPin(s string) bool {
	if len(s) != constants.PinLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return convert(instance().Struct(v), "")
}

// Var validates a single value. name is used in the message.
func Var(name string, value any, tag string) error {
	return convert(instance().Var(value, tag), name)
}

// Photo rejects profile photos over the size limit.
func Photo(size int64) error {
	if size > constants.MaxPhotoBytes {
		return &Error{Fields: []FieldError{{
			Field:   "photo",
			Tag:     "max",
			Message: fmt.Sprintf("photo is %d bytes; the limit is %d bytes (about 2MB)", size, constants.MaxPhotoBytes),
		}}}
	}
	return nil
}

func convert(err error, name string) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()
		if name != "" {
			field = name
		}
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Tag:     fe.Tag(),
			Message: message(field, fe.Tag(), fe.Param()),
		})
	}
	return out
}

func message(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return field + " is required"
	case "pin":
		return fmt.Sprintf("%s must be exactly %d digits", field, constants.PinLength)
	case "hhmm":
		return field + " must be a 24-hour time in HH:MM format"
	case "isodate":
		return field + " must be a date in YYYY-MM-DD format"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, tag)
	}
}
