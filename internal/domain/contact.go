package domain

import "strings"

// ContactMessage is a message sent from the website contact form
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ContactSubject is the subject of every relayed contact message
const ContactSubject = "Nouveau message de contact depuis le site web"

// Normalize trims the fields of the message
func (m ContactMessage) Normalize() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks the message fields
func (m ContactMessage) Validate() error {
	return ValidateContactMessage(m.Name, m.Email, m.Message)
}
