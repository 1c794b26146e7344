package errors

import (
	"net/http"
	"strings"
)

// User-facing messages kept apart from technical detail.
const (
	MsgInvalidAddress     = "The address could not be understood. Use the form: street, city, state zip."
	MsgUpstreamFailure    = "The property data provider is unavailable. Try again later."
	MsgBoardUnavailable   = "The board could not be reached. Check the board id and token."
	MsgServiceUnavailable = "The service is temporarily unavailable. Try again later."
	MsgInternalError      = "Something went wrong. Try again later."
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case strings.Contains(technicalMessage, "property search failed"),
		strings.Contains(technicalMessage, "owners lookup failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUpstreamFailure,
			Code:             ErrCodeUpstreamFailure,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "board fetch failed"),
		strings.Contains(technicalMessage, "board query error"),
		strings.Contains(technicalMessage, "not found"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgBoardUnavailable,
			Code:             ErrCodeBoardUnavailable,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "must have street, city"),
		strings.Contains(technicalMessage, "no recognizable state and zip"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidAddress,
			Code:             ErrCodeInvalidAddress,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
