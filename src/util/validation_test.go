package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCategoryType(t *testing.T) {
	assert.True(t, ValidateCategoryType("INCOME"))
	assert.True(t, ValidateCategoryType("EXPENSE"))
	assert.False(t, ValidateCategoryType("income"))
	assert.False(t, ValidateCategoryType(""))
	assert.False(t, ValidateCategoryType("TRANSFER"))
}

func TestValidateHexColor(t *testing.T) {
	assert.True(t, ValidateHexColor("#000000"))
	assert.True(t, ValidateHexColor("#1A2b3C"))
	assert.False(t, ValidateHexColor("000000"))
	assert.False(t, ValidateHexColor("#fff"))
	assert.False(t, ValidateHexColor("#12345g"))
}

func TestValidateAmount(t *testing.T) {
	assert.True(t, ValidateAmount(0))
	assert.True(t, ValidateAmount(150000))
	assert.False(t, ValidateAmount(-0.01))
}
