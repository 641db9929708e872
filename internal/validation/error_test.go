package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIsSortedByField(t *testing.T) {
	err := &Error{Fields: map[string]string{
		"type":   "must be one of: income expense asset liability",
		"amount": "is required",
		"date":   "must be a date in YYYY-MM-DD format",
	}}

	assert.Equal(t,
		"amount: is required; date: must be a date in YYYY-MM-DD format; type: must be one of: income expense asset liability",
		err.Error())
}
