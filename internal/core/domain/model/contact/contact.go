// Package contact holds the optional customer contact details collected
// during the conversation. A contact record outlives a single order and is
// reused across orders for the same session; this core updates it but never
// deletes it.
package contact

import "strings"

// Contact carries the phone number and email address known for a session.
// Either field may be empty; notification channels are attempted only for
// the fields that are present.
type Contact struct {
	phone string
	email string
}

// NewContact builds a contact record. Both values are optional and are
// stored as given apart from whitespace trimming; format validation is the
// notification layer's concern.
func NewContact(phone, email string) Contact {
	return Contact{
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}
}

// Phone returns the stored phone number, empty when not collected.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the stored email address, empty when not collected.
func (c Contact) Email() string {
	return c.email
}

// HasPhone reports whether a phone number has been collected.
func (c Contact) HasPhone() bool {
	return c.phone != ""
}

// HasEmail reports whether an email address has been collected.
func (c Contact) HasEmail() bool {
	return c.email != ""
}

// IsEmpty reports whether no contact detail is known at all.
func (c Contact) IsEmpty() bool {
	return !c.HasPhone() && !c.HasEmail()
}

// IsComplete reports whether both contact channels are known.
func (c Contact) IsComplete() bool {
	return c.HasPhone() && c.HasEmail()
}
