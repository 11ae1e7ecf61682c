package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchPayload struct {
	Query      string `validate:"required,min=1"`
	MaxResults int    `validate:"gte=1,lte=50"`
	Link       string `validate:"omitempty,url"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(searchPayload{Query: "laptop", MaxResults: 6})
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(searchPayload{MaxResults: 6})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "is required", valErr.Fields()["Query"])
	assert.Contains(t, err.Error(), "field 'Query' is required")
}

func TestValidate_OutOfRange(t *testing.T) {
	err := Validate(searchPayload{Query: "laptop", MaxResults: 51})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be less than or equal to 50", valErr.Fields()["MaxResults"])
}

func TestValidate_BadURL(t *testing.T) {
	err := Validate(searchPayload{Query: "laptop", MaxResults: 6, Link: "not a url"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be a valid URL", valErr.Fields()["Link"])
}

func TestValidate_MultipleFailures(t *testing.T) {
	err := Validate(searchPayload{MaxResults: 0})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Fields(), 2)
}
