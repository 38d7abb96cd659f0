package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	c := Cursor{Date: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), ID: "7f1e2c1a-0000-4000-8000-000000000001"}

	token := EncodeToken(c)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "=", "Token should be unpadded")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeToken(base64.RawURLEncoding.EncodeToString([]byte("2025-05-15")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(base64.RawURLEncoding.EncodeToString([]byte("notadate|abc")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 500))
	assert.Equal(t, 50, ClampLimit(-3, 50, 500))
	assert.Equal(t, 10, ClampLimit(10, 50, 500))
	assert.Equal(t, 500, ClampLimit(9000, 50, 500))
}
