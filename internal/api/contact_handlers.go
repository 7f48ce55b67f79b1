package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/service"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

func PostContact(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := service.ValidateContactRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		contact, err := service.CreateContact(c.Request.Context(), app.Contacts(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save contact")
			return
		}

		HandleSuccess(c, app.Logger(), contact, nil)
	}
}

func GetContacts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		contacts, err := app.Contacts().ListContacts(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch contacts")
			return
		}

		HandleSuccess(c, app.Logger(), contacts, nil)
	}
}

func PutContact(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := service.ValidateContactRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		contact, err := service.UpdateContact(c.Request.Context(), app.Contacts(), user, c.Param("id"), &req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, http.StatusNotFound, "Contact not found")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to update contact")
			return
		}

		HandleSuccess(c, app.Logger(), contact, nil)
	}
}

func DeleteContact(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		err := app.Contacts().DeleteContact(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, http.StatusNotFound, "Contact not found")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to delete contact")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": c.Param("id")})
	}
}
