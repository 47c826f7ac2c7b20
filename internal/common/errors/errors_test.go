// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardError_Error(t *testing.T) {
	err := NewSessionLoadFailedError(errors.New("connection refused"))
	assert.Equal(t, "StandardError[SESSION_LOAD_FAILED]: Session store read error", err.Error())
	assert.Contains(t, err.Details, "connection refused")
}

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeSessionLoadFailed, 3},
		{ErrCodeSessionSaveFailed, 3},
		{ErrCodeProfileStoreFailed, 3},
		{ErrCodeIntentParsingFailed, 3},
		{ErrCodeLLMSynthesisFailed, 3},
		{ErrCodeLLMTimeout, 1},
		{ErrCodeCatalogLoadFailed, 0},
		{ErrCodeCatalogValidationFailed, 0},
		{ErrCodeTranslationFailed, 0},
		{ErrCodeSpeechSynthesisFailed, 0},
		{ErrCodeInvalidRequest, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRetryCount(tt.code))
			assert.Equal(t, tt.expected > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestConstructorsSetRetryable(t *testing.T) {
	assert.True(t, NewSessionSaveFailedError(errors.New("x")).Retryable)
	assert.True(t, NewLLMTimeoutError().Retryable)
	assert.False(t, NewCatalogLoadFailedError("path", errors.New("x")).Retryable)
	assert.False(t, NewTranslationFailedError(errors.New("x")).Retryable)
	assert.False(t, NewInvalidRequestError("bad body").Retryable)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
	}{
		{ErrCodeCatalogLoadFailed, "CATALOG"},
		{ErrCodeSessionLoadFailed, "STORAGE"},
		{ErrCodeProfileStoreFailed, "STORAGE"},
		{ErrCodeIntentParsingFailed, "AI"},
		{ErrCodeLLMTimeout, "AI"},
		{ErrCodeTranslationFailed, "LANGUAGE"},
		{ErrCodeSpeechSynthesisFailed, "LANGUAGE"},
		{ErrCodeInvalidRequest, "VALIDATION"},
		{ErrorCode("SOMETHING_ELSE"), "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.category, GetErrorCategory(tt.code))
		})
	}
}
