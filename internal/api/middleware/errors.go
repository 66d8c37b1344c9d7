package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error     string `json:"error" description:"Error class"`
	Message   string `json:"message" description:"Error message"`
	Code      int    `json:"code" description:"HTTP status code"`
	RequestID string `json:"request_id,omitempty" description:"Request identifier, when one was assigned"`
}

// HandleError writes err as an ErrorResponse with the given status.
func HandleError(resp *restful.Response, err error, code int) {
	WriteError(resp, ErrorResponse{
		Error:   http.StatusText(code),
		Message: err.Error(),
		Code:    code,
	})
}

func WriteError(resp *restful.Response, body ErrorResponse) {
	if body.Code == 0 {
		body.Code = http.StatusInternalServerError
	}
	if writeErr := resp.WriteHeaderAndEntity(body.Code, body); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
