package validator

import (
	"github.com/go-playground/validator/v10"
)

const (
	PhoneTag = "phone"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	PhoneTag: ValidatePhone,
}

// ValidatePhone accepts any formatting as long as at least one ASCII digit is present.
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			return true
		}
	}
	return false
}
