// Package contactrepo provides data transfer objects and mapping functions
// for per-session contact details. Phone and email arrive at different
// points of the conversation, so the row is upserted one field at a time.
package contactrepo

import (
	"foodibot/internal/core/domain/model/contact"
)

// ContactDTO represents the database structure for persisting contact details.
// Either field may be empty until the conversation collects it.
type ContactDTO struct {
	SessionID string `gorm:"column:session_id;primaryKey"`
	Phone     string
	Email     string
}

// TableName specifies the database table name for contact rows.
func (ContactDTO) TableName() string {
	return "user_contacts"
}

// toDomain converts a database row to a contact value.
func toDomain(dto ContactDTO) contact.Contact {
	return contact.NewContact(dto.Phone, dto.Email)
}
