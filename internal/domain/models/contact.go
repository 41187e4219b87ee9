package models

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	UserEmail   string `json:"userEmail"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Message     string `json:"message"`
}
