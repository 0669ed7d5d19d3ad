package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 70)
	require.NoError(t, err)
	assert.InDelta(t, 24.2, bmi, 0.1)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
}
