package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/service"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

func PostNote(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.NoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := service.ValidateNoteRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		note, err := service.CreateNote(c.Request.Context(), app.Notes(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save note")
			return
		}

		HandleSuccess(c, app.Logger(), note, nil)
	}
}

func GetNotes(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		notes, err := app.Notes().ListNotes(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch notes")
			return
		}

		notes = service.FilterNotesByTag(notes, c.Query("tag"))
		HandleSuccess(c, app.Logger(), notes, nil)
	}
}

func PutNote(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.NoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := service.ValidateNoteRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		note, err := service.UpdateNote(c.Request.Context(), app.Notes(), user, c.Param("id"), &req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, http.StatusNotFound, "Note not found")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to update note")
			return
		}

		HandleSuccess(c, app.Logger(), note, nil)
	}
}

func DeleteNote(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		err := app.Notes().DeleteNote(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, http.StatusNotFound, "Note not found")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to delete note")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": c.Param("id")})
	}
}
