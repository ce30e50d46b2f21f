package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Settings."))
		return fmt.Errorf("invalid setting %s=%v: must satisfy %s %s", field, fe.Value(), fe.Tag(), fe.Param())
	}
	return err
}
