package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("notblank", notBlankFL))

	assert.NoError(t, v.Var("pet-1", "notblank"))
	assert.Error(t, v.Var("   ", "notblank"))
	assert.Error(t, v.Var("", "notblank"))
}
