package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       string
		httpStatus int
	}{
		{
			name:       "property search failure",
			err:        fmt.Errorf("property search failed: status 503"),
			code:       ErrCodeUpstreamFailure,
			httpStatus: http.StatusBadGateway,
		},
		{
			name:       "owners lookup failure",
			err:        fmt.Errorf("owners lookup failed for PR123: status 500"),
			code:       ErrCodeUpstreamFailure,
			httpStatus: http.StatusBadGateway,
		},
		{
			name:       "board failure",
			err:        fmt.Errorf("board fetch failed: status 401"),
			code:       ErrCodeBoardUnavailable,
			httpStatus: http.StatusBadGateway,
		},
		{
			name:       "parse failure",
			err:        fmt.Errorf(`address "x" must have street, city, and state/zip parts`),
			code:       ErrCodeInvalidAddress,
			httpStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error",
			err:        errors.New("something else"),
			code:       "INTERNAL_ERROR",
			httpStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
			assert.NotEmpty(t, appErr.UserMessage)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	original := NewAppError("tech", "user", ErrCodeRateLimited, http.StatusTooManyRequests, nil)
	assert.Same(t, original, MapError(original))
	assert.Nil(t, MapError(nil))
}
