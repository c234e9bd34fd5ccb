package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrNameTooShort     = errors.New("name is too short")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPhoneTooShort    = errors.New("phone is too short")
	ErrPhoneTooLong     = errors.New("phone is too long")
	ErrNegativeChars    = errors.New("vehicle count must not be negative")
	ErrNoChars          = errors.New("booking must reserve at least one vehicle")
	ErrTooManyChars     = errors.New("too many vehicles requested")
	ErrMessageTooShort  = errors.New("message is too short")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrInvalidTimeRange = errors.New("slot end must be after start")
	ErrNegativeCapacity = errors.New("capacity must not be negative")
)

// ValidateCustomer checks the contact details of a booking
func ValidateCustomer(userName, email, phone string) error {
	if err := validateName(userName, MinUserNameLength); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}

	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) < MinPhoneLength {
		return fmt.Errorf("%w: at least %d characters", ErrPhoneTooShort, MinPhoneLength)
	}
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	return nil
}

// ValidateChars checks requested vehicle counts: non-negative and at least one vehicle
func ValidateChars(simpleChars, doubleChars int) error {
	if simpleChars < 0 || doubleChars < 0 {
		return ErrNegativeChars
	}
	if simpleChars+doubleChars < 1 {
		return ErrNoChars
	}
	if simpleChars > MaxCharsPerSlot || doubleChars > MaxCharsPerSlot {
		return ErrTooManyChars
	}
	return nil
}

// ValidateContactMessage checks a contact form submission
func ValidateContactMessage(name, email, message string) error {
	if err := validateName(name, MinContactNameLength); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}

	length := utf8.RuneCountInString(strings.TrimSpace(message))
	if length < MinContactMessageLength {
		return fmt.Errorf("%w: at least %d characters", ErrMessageTooShort, MinContactMessageLength)
	}
	if length > MaxContactMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// ValidateSlotShape checks the time range and capacities of a slot
func ValidateSlotShape(s *Slot) error {
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}
	if s.End <= s.Start {
		return ErrInvalidTimeRange
	}
	if s.CapacitySimple < 0 || s.CapacityDouble < 0 {
		return ErrNegativeCapacity
	}
	return nil
}

// ValidateEmail accepts a bare address (no display name)
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > MaxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string, minLength int) error {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < minLength {
		return fmt.Errorf("%w: at least %d characters", ErrNameTooShort, minLength)
	}
	if length > MaxUserNameLength {
		return ErrNameTooLong
	}
	return nil
}
