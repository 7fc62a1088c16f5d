package server

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	requiredTag  = "required"
	requiredText = "{0} is required"
)

type requestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newValidator() *requestValidator {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	// Report json field names rather than Go struct field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation(requiredTag, trans,
		func(t ut.Translator) error { return t.Add(requiredTag, requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(requiredTag, fe.Field())
			return s
		},
	)

	return &requestValidator{validate: validate, translator: trans}
}

// fields returns a json-field-name to message map, or nil when v is valid.
func (rv *requestValidator) fields(v any) map[string]string {
	err := rv.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = fe.Translate(rv.translator)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// decodeValid reads the JSON body into v and validates it, writing a 400
// response and returning false on failure.
func (rv *requestValidator) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	return rv.decode(w, r, v, false)
}

// decodeOptional is decodeValid for requests where an empty body means the
// zero value of v.
func (rv *requestValidator) decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	return rv.decode(w, r, v, true)
}

func (rv *requestValidator) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := readJSON(r, v)
	if optional && errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if fields := rv.fields(v); fields != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
		return false
	}
	return true
}
