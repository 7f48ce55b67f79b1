package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/dial"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type CheckInRequest struct {
	Date         string         `json:"date" validate:"required,datetime=2006-01-02"`
	Bedtime      dial.ClockTime `json:"bedtime"`
	WakeTime     dial.ClockTime `json:"wake_time"`
	SleepQuality int            `json:"sleep_quality" validate:"required,gte=1,lte=10"`
	Gratitude    []string       `json:"gratitude,omitempty" validate:"max=10,dive,required,max=280"`
	Intention    string         `json:"intention,omitempty" validate:"max=500"`
	Mindset      string         `json:"mindset,omitempty" validate:"max=500"`
}

// ValidateCheckInRequest runs the struct tags plus the dial invariants the
// tag language can't express: both times in range and on a 5-minute mark,
// the contract the circular selector guarantees on the client.
func ValidateCheckInRequest(body *CheckInRequest) error {
	if err := validate.Struct(body); err != nil {
		return err
	}
	for name, t := range map[string]dial.ClockTime{"bedtime": body.Bedtime, "wake_time": body.WakeTime} {
		if !t.Valid() {
			return fmt.Errorf("%s out of range: %s", name, t)
		}
		if !t.Snapped() {
			return fmt.Errorf("%s minute must be a multiple of 5: %s", name, t)
		}
	}
	return nil
}

func CreateCheckIn(ctx context.Context, repo storage.CheckInRepository, user *internal.User, body *CheckInRequest) (*internal.CheckIn, error) {
	c := &internal.CheckIn{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Date:         body.Date,
		Bedtime:      body.Bedtime,
		WakeTime:     body.WakeTime,
		SleepQuality: body.SleepQuality,
		Gratitude:    body.Gratitude,
		Intention:    body.Intention,
		Mindset:      body.Mindset,
		CreatedAt:    time.Now(),
	}
	if err := repo.SaveCheckIn(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// FormatDuration renders a duration the way the review screens show sleep,
// e.g. "8h05m".
func FormatDuration(d time.Duration) string {
	h, m := dial.SplitDuration(d)
	return fmt.Sprintf("%dh%02dm", h, m)
}
