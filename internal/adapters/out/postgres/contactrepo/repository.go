package contactrepo

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/contact"
	"foodibot/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContactRepository implements ContactRepository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Get retrieves the contact row for a session. A session with no row yet
// yields an empty contact, not an error.
func (r *GormContactRepository) Get(ctx context.Context, sessionID kernel.SessionID) (contact.Contact, error) {
	if err := sessionID.Validate(); err != nil {
		return contact.Contact{}, err
	}

	var dto ContactDTO
	err := r.db.WithContext(ctx).First(&dto, "session_id = ?", sessionID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contact.NewContact("", ""), nil
		}
		return contact.Contact{}, err
	}

	return toDomain(dto), nil
}

// SetPhone stores the phone number for a session, creating the row when
// needed and preserving any stored email.
func (r *GormContactRepository) SetPhone(ctx context.Context, sessionID kernel.SessionID, phone string) error {
	return r.setField(ctx, sessionID, ContactDTO{
		SessionID: sessionID.String(),
		Phone:     phone,
	}, "phone")
}

// SetEmail stores the email address for a session, creating the row when
// needed and preserving any stored phone.
func (r *GormContactRepository) SetEmail(ctx context.Context, sessionID kernel.SessionID, email string) error {
	return r.setField(ctx, sessionID, ContactDTO{
		SessionID: sessionID.String(),
		Email:     email,
	}, "email")
}

// setField upserts a single contact column so the other column survives.
func (r *GormContactRepository) setField(
	ctx context.Context,
	sessionID kernel.SessionID,
	dto ContactDTO,
	column string,
) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{column}),
		}).
		Create(&dto).Error
}
