package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body of every JSON route.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	InsertedID interface{} `json:"insertedId,omitempty"`
}

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		// Encoding failed - return 500 instead
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondData writes a successful envelope carrying data
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondMessage writes a successful envelope with only a message
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Envelope{Success: true, Message: message})
}

// RespondCreated writes 201 with the generated identifier
func RespondCreated(w http.ResponseWriter, message string, insertedID interface{}) {
	RespondJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, InsertedID: insertedID})
}

// RespondError writes a failed envelope. message must be safe to show to clients.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(Envelope{Success: false, Message: message})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
