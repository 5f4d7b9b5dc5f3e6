package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yoockh/jardam/internal/utils"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's binding engine and
// makes field errors report json names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return utils.ValidPhone(fl.Field().String())
		})
	})
}

// bindError turns a ShouldBindJSON failure into an INVALID_ARGUMENT error
// whose message names the offending field.
func bindError(op string, err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "invalid request body", err)
	}

	fe := ves[0]
	var msg string
	switch fe.Tag() {
	case "phone":
		msg = "invalid phone number"
	case "oneof":
		msg = fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "required":
		msg = fe.Field() + " is required"
	default:
		msg = fe.Field() + " is invalid"
	}
	return utils.E(utils.CodeInvalidArgument, op, msg, err)
}
