package prompt

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prettyline/internal/style"
	prettyerrors "github.com/alexisbeaulieu97/prettyline/pkg/errors"
)

// Inputs are the values a prompt is built from. Everything here has already
// been read from the environment or the command line.
type Inputs struct {
	Username   string `validate:"utf8"`
	Exit       ExitStatus
	VirtualEnv bool
	Clock      string `validate:"utf8"`
	Background style.Color
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tagMessages = map[string]string{
		"utf8":     "contains bytes that are not valid UTF-8",
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
			return utf8.ValidString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that the inputs can be rendered.
func (in Inputs) Validate() error {
	if err := validatorInstance().Struct(in); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(ve.Field())
		msg, ok := tagMessages[ve.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		}
		return prettyerrors.NewValidationError(field, msg, err)
	}

	return prettyerrors.NewValidationError("inputs", err.Error(), err)
}
