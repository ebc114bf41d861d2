package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodibot/internal/core/domain/model/contact"
)

func Test_Contact(t *testing.T) {
	tests := map[string]struct {
		phone       string
		email       string
		hasPhone    bool
		hasEmail    bool
		empty       bool
		complete    bool
	}{
		"nothing collected":      {"", "", false, false, true, false},
		"phone only":             {"+923001234567", "", true, false, false, false},
		"email only":             {"", "user@example.com", false, true, false, false},
		"both collected":         {"+923001234567", "user@example.com", true, true, false, true},
		"whitespace is no value": {"   ", "\t", false, false, true, false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := contact.NewContact(test.phone, test.email)

			assert.Equal(t, test.hasPhone, c.HasPhone())
			assert.Equal(t, test.hasEmail, c.HasEmail())
			assert.Equal(t, test.empty, c.IsEmpty())
			assert.Equal(t, test.complete, c.IsComplete())
		})
	}
}

func Test_Contact_TrimsWhitespace(t *testing.T) {
	c := contact.NewContact(" +923001234567 ", " user@example.com ")

	assert.Equal(t, "+923001234567", c.Phone())
	assert.Equal(t, "user@example.com", c.Email())
}
