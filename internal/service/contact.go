package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

type ContactRequest struct {
	Name     string     `json:"name" validate:"required,max=100"`
	MetAt    string     `json:"met_at,omitempty" validate:"max=200"`
	Status   string     `json:"status" validate:"required,oneof=interested dating paused ended"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
	Notes    string     `json:"notes,omitempty" validate:"max=2000"`
}

func ValidateContactRequest(req *ContactRequest) error {
	return validate.Struct(req)
}

func CreateContact(ctx context.Context, repo storage.ContactRepository, user *internal.User, req *ContactRequest) (*internal.Contact, error) {
	now := time.Now()
	c := &internal.Contact{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      req.Name,
		MetAt:     req.MetAt,
		Status:    req.Status,
		LastSeen:  req.LastSeen,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.SaveContact(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateContact replaces the editable fields. Any status transition is
// allowed, including reviving an ended contact.
func UpdateContact(ctx context.Context, repo storage.ContactRepository, user *internal.User, id string, req *ContactRequest) (*internal.Contact, error) {
	existing, err := repo.GetContact(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.MetAt = req.MetAt
	existing.Status = req.Status
	existing.LastSeen = req.LastSeen
	existing.Notes = req.Notes
	existing.UpdatedAt = time.Now()
	if err := repo.UpdateContact(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
