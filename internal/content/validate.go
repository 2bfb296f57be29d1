package content

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	showcaseerrors "github.com/cristianoliveira/showcase/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("postdate", func(fl validator.FieldLevel) bool {
			_, ok := parseDate(fl.Field().String())
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// validateFile checks a decoded file and reports failures against label,
// e.g. "projects[2].title".
func validateFile(source, label string, v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return &showcaseerrors.ValidationError{
			Source: source,
			Fields: []showcaseerrors.FieldError{{Field: label, Rule: err.Error()}},
		}
	}
	verr := &showcaseerrors.ValidationError{Source: source}
	for _, fe := range ves {
		verr.Fields = append(verr.Fields, showcaseerrors.FieldError{
			Field: fieldPath(label, fe.Namespace()),
			Rule:  fe.Tag(),
			Value: fe.Value(),
		})
	}
	return verr
}

// fieldPath turns "projectsFile.items[2].title" into "projects[2].title".
func fieldPath(label, namespace string) string {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		return label
	}
	if strings.HasPrefix(rest, itemsKey) {
		return label + strings.TrimPrefix(rest, itemsKey)
	}
	return label + "." + rest
}
