package errors

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ekviron/orders-api/internal/orders/application"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Respond writes the error body with its own status code.
func Respond(c *gin.Context, apiErr Error) {
	c.JSON(apiErr.Status, apiErr)
}

// RespondError translates any error reaching the boundary into the
// canonical body. The match is a closed set: typed application errors map
// to 404/409, a pre-built Error passes through, and everything else
// collapses to 500 without leaking its text into the message field.
func RespondError(c *gin.Context, err error) {
	Respond(c, Translate(err))
}

// Translate maps an error to its API representation.
func Translate(err error) Error {
	var apiErr Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var notFound *application.NotFoundError
	if errors.As(err, &notFound) {
		return NewNotFound(notFound.Error())
	}
	var exists *application.AlreadyExistsError
	if errors.As(err, &exists) {
		return NewConflict(exists.Error())
	}
	return NewInternal(err)
}

// RespondJSON serializes a success payload explicitly so marshal failures
// surface as the designated write-failure error body instead of a broken
// response stream.
func RespondJSON(c *gin.Context, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		Respond(c, NewWriteFailure())
		return
	}
	c.Data(status, contentTypeJSON, data)
}
