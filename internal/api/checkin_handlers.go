package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/service"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

func PostCheckIn(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.CheckInRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		if err := service.ValidateCheckInRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		checkin, err := service.CreateCheckIn(c.Request.Context(), app.CheckIns(), user, &body)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateCheckIn) {
				HandleError(c, app.Logger(), err, http.StatusConflict, "Already checked in")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save check-in")
			return
		}

		meta := map[string]any{"sleep": service.FormatDuration(checkin.SleepDuration())}
		HandleSuccess(c, app.Logger(), checkin, meta)
	}
}

func GetCheckIns(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		checkins, err := app.CheckIns().ListCheckIns(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch check-ins")
			return
		}

		HandleSuccess(c, app.Logger(), checkins, nil)
	}
}

func GetWeeklyReview(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		checkins, err := app.CheckIns().ListCheckIns(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch check-ins for review")
			return
		}

		review := service.CalculateWeeklyReview(time.Now(), checkins)
		HandleSuccess(c, app.Logger(), review, nil)
	}
}
