package errors

import "net/http"

// Messages carried by the error envelope, keyed by HTTP status.
const (
	MsgBadRequest          = "Bad request"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgUnprocessableEntity = "Un-processable Entity"
	MsgInternalError       = "Internal Server Error"
	MsgBadGateway          = "Bad gateway"
)

var messages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessableEntity,
	http.StatusInternalServerError: MsgInternalError,
	http.StatusBadGateway:          MsgBadGateway,
}

// MessageFor returns the envelope message for a status, falling back to the standard status text.
func MessageFor(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
