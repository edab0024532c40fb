package transport

import "encoding/json"

// Envelope is the uniform response wrapper. All three keys are always
// serialized; data and error are mutually exclusive in content, the unused
// one stays null.
type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
	Error  interface{} `json:"error"`
}

// InternalErrorMessage is the only text an unanticipated fault may surface.
// Full detail stays in the server logs.
const InternalErrorMessage = "Internal server error"

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
	}
}

// NewError returns an error envelope.
func NewError(message string) Envelope {
	return Envelope{
		Status: "error",
		Error:  message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
