package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("modular-kitchen-l-shape"))
	assert.NoError(t, ValidateSlug("2bhk-premium"))

	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("Modular-Kitchen"))
	assert.Error(t, ValidateSlug("kitchen_l_shape"))
	assert.Error(t, ValidateSlug("-leading-hyphen"))
	assert.Error(t, ValidateSlug("trailing-hyphen-"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "modular-kitchen-l-shape", Slugify("Modular Kitchen (L-Shape)"))
	assert.Equal(t, "2bhk-premium", Slugify("  2BHK Premium "))
	assert.Equal(t, "wardrobe", Slugify("Wardrobe!"))
}
