package storage

import (
	"context"
	"errors"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
)

var (
	// ErrNotFound is returned when an entity id does not exist for the user.
	ErrNotFound = errors.New("storage: not found")
	// ErrDuplicateCheckIn is returned when a user already checked in on a date.
	ErrDuplicateCheckIn = errors.New("storage: check-in already exists for date")
)

type CheckInRepository interface {
	SaveCheckIn(ctx context.Context, c *internal.CheckIn) error
	ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error)
}

type NoteRepository interface {
	SaveNote(ctx context.Context, n *internal.Note) error
	GetNote(ctx context.Context, userID, id string) (*internal.Note, error)
	ListNotes(ctx context.Context, userID string) ([]internal.Note, error)
	UpdateNote(ctx context.Context, n *internal.Note) error
	DeleteNote(ctx context.Context, userID, id string) error
}

type ContactRepository interface {
	SaveContact(ctx context.Context, c *internal.Contact) error
	GetContact(ctx context.Context, userID, id string) (*internal.Contact, error)
	ListContacts(ctx context.Context, userID string) ([]internal.Contact, error)
	UpdateContact(ctx context.Context, c *internal.Contact) error
	DeleteContact(ctx context.Context, userID, id string) error
}

// Repositories bundles the three stores a backend provides.
type Repositories struct {
	CheckIns CheckInRepository
	Notes    NoteRepository
	Contacts ContactRepository
}
