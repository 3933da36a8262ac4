package handlers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_AccountCode(t *testing.T) {
	require.NotPanics(t, registerValidators)
	require.NotPanics(t, registerValidators, "registration runs once")

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		code  string
		valid bool
	}{
		{"1010", true},
		{"0000", true},
		{"101", false},
		{"10100", false},
		{"10a0", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := v.Var(tt.code, "account_code")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
