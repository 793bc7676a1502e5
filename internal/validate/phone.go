// Package validate holds small input validators shared by the venue
// and artist handlers.
package validate

import "fmt"

// PhoneFormatError reports a phone number that does not match the
// ddd-ddd-dddd format.  It carries the submitted value so handlers
// can echo it back to the user.
type PhoneFormatError struct {
	Phone string // the value as submitted
}

// Error makes PhoneFormatError satisfy the error interface.  The text
// mirrors the message shown to users on create/edit forms.
func (e *PhoneFormatError) Error() string {
	return fmt.Sprintf("incorrect phone number format xxx-xxx-xxxx (%s)", e.Phone)
}

// IsValidPhone reports whether phone matches ddd-ddd-dddd exactly:
// twelve characters, dashes at positions 3 and 7, decimal digits
// everywhere else.  There is no locale or country-code awareness.
func IsValidPhone(phone string) bool {
	if len(phone) != 12 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if i == 3 || i == 7 {
			if phone[i] != '-' {
				return false
			}
			continue
		}
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// CheckPhone returns a PhoneFormatError when phone is not valid, nil
// otherwise.
func CheckPhone(phone string) error {
	if !IsValidPhone(phone) {
		return &PhoneFormatError{Phone: phone}
	}
	return nil
}
