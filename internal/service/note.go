package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

type NoteRequest struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Author  string   `json:"author,omitempty" validate:"max=200"`
	Excerpt string   `json:"excerpt,omitempty" validate:"max=2000"`
	Tags    []string `json:"tags,omitempty" validate:"max=20,dive,required,max=50"`
}

func ValidateNoteRequest(req *NoteRequest) error {
	return validate.Struct(req)
}

func CreateNote(ctx context.Context, repo storage.NoteRepository, user *internal.User, req *NoteRequest) (*internal.Note, error) {
	now := time.Now()
	n := &internal.Note{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Title:     req.Title,
		Author:    req.Author,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.SaveNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func UpdateNote(ctx context.Context, repo storage.NoteRepository, user *internal.User, id string, req *NoteRequest) (*internal.Note, error) {
	existing, err := repo.GetNote(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	existing.Title = req.Title
	existing.Author = req.Author
	existing.Excerpt = req.Excerpt
	existing.Tags = req.Tags
	existing.UpdatedAt = time.Now()
	if err := repo.UpdateNote(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// FilterNotesByTag keeps notes carrying the given tag; an empty tag keeps
// everything.
func FilterNotesByTag(notes []internal.Note, tag string) []internal.Note {
	if tag == "" {
		return notes
	}
	filtered := []internal.Note{}
	for _, n := range notes {
		for _, t := range n.Tags {
			if t == tag {
				filtered = append(filtered, n)
				break
			}
		}
	}
	return filtered
}
