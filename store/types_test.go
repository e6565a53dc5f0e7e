package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmail(t *testing.T) {
	email, err := ParseEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, Email("a@b.com"), email)

	for _, raw := range []string{"", "nope", "@b.com", "a@"} {
		_, err := ParseEmail(raw)
		require.Error(t, err, "raw=%q", raw)

		var perr ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "email", perr.Code)
	}
}

func TestParseErrorString(t *testing.T) {
	assert.Equal(t, "email: bad", ParseError{Code: "email", Message: "bad"}.Error())
	assert.Equal(t, "bad", ParseError{Message: "bad"}.Error())
}
