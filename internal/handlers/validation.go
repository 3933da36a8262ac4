package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// accountCodeLength is the width of every code in the chart of accounts.
const accountCodeLength = 4

// validateAccountCode accepts four-digit account codes. Whether the code exists is the ledger's call.
func validateAccountCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != accountCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// registerValidators adds the custom binding rules used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("account_code", validateAccountCode); err != nil {
				panic(fmt.Sprintf("handlers: failed to register account_code validation: %v", err))
			}
		}
	})
}
