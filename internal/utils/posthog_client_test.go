package utils

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_DisabledWithoutKey(t *testing.T) {
	w := InitializePosthogClient("", slog.Default())
	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("user-1", "api_v1_imports", nil)
		w.Close()
	})

	var nilWrapper *PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
}
