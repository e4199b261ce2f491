package corner

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for decorated errors in API
// endpoints and log sinks. It is a flat, serializable view: the captured
// stack and the wrapped error chain are intentionally excluded, since frames
// expose absolute file paths and chains may carry internal detail. The
// helpful message and support link are safe, fixed per-variant strings.
type ErrorResponse struct {
	// Kind is the variant tag identifying the type of error.
	Kind string `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// HelpfulMessage is the fixed debugging hint for the variant.
	HelpfulMessage string `json:"helpful_message"`

	// SupportLink is the fixed support URL for the variant.
	SupportLink string `json:"support_link"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON
// serialization. Returns nil if err is nil.
//
// For CornerError instances the kind, message, and decoration are extracted
// from the chain. Undecorated errors serialize with KindUnknown and its
// generic decoration, so the helpful message is always populated.
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    response := corner.ToJSON(err)
//	    if response == nil {
//	        return // No error
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(http.StatusInternalServerError)
//	    json.NewEncoder(w).Encode(response)
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()

	var cornerErr CornerError
	if As(err, &cornerErr) {
		message = cornerErr.Message()
	}

	return &ErrorResponse{
		Kind:           string(GetKind(err)),
		Message:        message,
		HelpfulMessage: GetHelpfulMessage(err),
		SupportLink:    GetSupportLink(err),
	}
}

// MarshalJSON implements json.Marshaler for cornerError, so decorated errors
// can be passed straight to json.Marshal without calling ToJSON.
//
// Example:
//
//	err := corner.New(corner.KindNotFound, "user not found")
//	data, _ := json.Marshal(err)
//	// {"kind":"NotFound","message":"user not found","helpful_message":"...","support_link":"..."}
func (e *cornerError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Kind:           string(e.kind),
		Message:        e.message,
		HelpfulMessage: e.decoration.HelpfulMessage,
		SupportLink:    e.decoration.SupportLink,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, Wrap(err, KindInternal, "failed to marshal error response")
	}
	return data, nil
}
