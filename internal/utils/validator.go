// internal/utils/validator.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var httpURLPattern = regexp.MustCompile(`(?i)^https?://\S+$`)

// Layouts accepted for date fields, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("opt_email", validateOptionalEmail)
	validate.RegisterValidation("http_url", validateHTTPURL)
	validate.RegisterValidation("nonneg_int", validateNonNegativeInt)
	validate.RegisterValidation("flex_date", validateFlexDate)
	validate.RegisterValidation("single_line", validateSingleLine)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Pointer fields count as present whenever they are non-nil, so
// "omitempty" does not skip an explicit "". The custom tags below treat
// an empty string as valid and required strings add "notblank".

// ValidatePartial runs the field rules of s only for the pointer fields the
// client actually sent. Absent fields are neither required nor checked.
func ValidatePartial(s interface{}) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return validate.Struct(s)
	}

	var present []string
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Ptr && !f.IsNil() {
			present = append(present, t.Field(i).Name)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return validate.StructPartial(s, present...)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateOptionalEmail(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s == "" || validate.Var(s, "email") == nil
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s == "" || httpURLPattern.MatchString(s)
}

func validateNonNegativeInt(fl validator.FieldLevel) bool {
	_, err := parseNonNegativeInt(fl.Field().String())
	return err == nil
}

func validateFlexDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := ParseDate(s)
	return err == nil
}

// single_line guards values that end up in mail headers.
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// IntString holds a client-supplied integer exactly as written: either a
// JSON number or a numeric string. The nonneg_int tag checks it and Int
// converts it once validation has passed.
type IntString string

func (n *IntString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = IntString(strings.TrimSpace(s))
		return nil
	}
	*n = IntString(b)
	return nil
}

func (n IntString) Int() int {
	v, _ := parseNonNegativeInt(string(n))
	return v
}

func parseNonNegativeInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.New("not a whole number")
	}
	if f < 0 || f > math.MaxInt32 {
		return 0, errors.New("out of range")
	}
	return int(f), nil
}

// DateString holds a client-supplied date or timestamp string.
type DateString string

// Time returns the parsed value; an empty string yields the zero time.
func (d DateString) Time() time.Time {
	t, _ := ParseDate(string(d))
	return t
}

func (d DateString) IsEmpty() bool {
	return strings.TrimSpace(string(d)) == ""
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return e.Field() + " is required"
	case "email", "opt_email":
		return e.Field() + " must be a valid email address"
	case "http_url":
		return e.Field() + " must be a valid URL starting with http:// or https://"
	case "nonneg_int":
		return e.Field() + " must be a non-negative whole number"
	case "flex_date":
		return e.Field() + " must be a valid date"
	case "single_line":
		return e.Field() + " must not contain line breaks"
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " is invalid"
	}
}

// BindErrorMessage turns a JSON decoding failure into a client-facing
// message that names the offending field where possible.
func BindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s has an invalid type", typeErr.Field)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body is not valid JSON"
	}
	if err != nil && err.Error() == "EOF" {
		return "request body is required"
	}
	return "invalid request body"
}
