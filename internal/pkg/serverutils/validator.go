// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"errors"
	"strings"

	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts the first failure
// into a field-level validation error from the taxonomy.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperror.Validation(strings.ToLower(fe.Field()), "failed on rule: "+fe.Tag())
		}
		return apperror.New(apperror.KindValidation, err.Error())
	}
	return nil
}
