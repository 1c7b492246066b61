package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormChecker(t *testing.T) {
	f := NewFormChecker()
	f.Required("name", "Ramesh")
	assert.NoError(t, f.Err("please fill all fields"))

	f.Required("phone", "   ")
	f.Check(false, "phone", "phone is invalid")
	f.Check(false, "district", "unknown district")
	f.Check(true, "village", "never recorded")

	err := f.Err("please fill all fields")
	require.Error(t, err)

	var formErr *FormError
	require.True(t, errors.As(err, &formErr))
	assert.Equal(t, "please fill all fields", formErr.Message)
	assert.Equal(t, map[string]string{
		"phone":    "phone is required",
		"district": "unknown district",
	}, formErr.Errors)
}
