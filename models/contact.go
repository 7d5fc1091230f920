package models

// ContactRequest is a contact-form submission forwarded to the email
// provider. Transient: forwarded once and discarded.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
