package serverutils

import (
	"testing"

	"pawrescue-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createAnimalForm struct {
	Name    string `validate:"required,min=2,max=100"`
	Species string `validate:"required,oneof=dog cat rabbit bird other"`
	Age     int    `validate:"omitempty,min=0,max=50"`
	Photo   string `validate:"omitempty,url"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(createAnimalForm{
		Name:    "Rex",
		Species: "dog",
		Age:     4,
		Photo:   "https://example.com/rex.jpg",
	})
	assert.NoError(t, err)
}

func TestValidateRequestCollectsAllFields(t *testing.T) {
	err := ValidateRequest(createAnimalForm{
		Name:    "R",
		Species: "dinosaur",
		Photo:   "not-a-url",
	})
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)

	assert.Len(t, appErr.Fields, 3)
	assert.Equal(t, "must be at least 2 characters", appErr.Fields["name"])
	assert.Equal(t, "must be one of: dog, cat, rabbit, bird, other", appErr.Fields["species"])
	assert.Equal(t, "must be a well-formed URL", appErr.Fields["photo"])
}

func TestValidateRequestRequiredMessage(t *testing.T) {
	err := ValidateRequest(createAnimalForm{})
	require.Error(t, err)

	appErr := err.(*apperror.AppError)
	assert.Equal(t, "is required", appErr.Fields["name"])
	assert.Equal(t, "is required", appErr.Fields["species"])
}

func TestValidateRequestNumericRange(t *testing.T) {
	err := ValidateRequest(createAnimalForm{Name: "Mochi", Species: "cat", Age: 99})
	require.Error(t, err)

	appErr := err.(*apperror.AppError)
	assert.Equal(t, "must be <= 50", appErr.Fields["age"])
}
