package service

import (
	"time"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/dial"
)

// DayReview is one check-in condensed for the weekly review screen.
type DayReview struct {
	Date         string         `json:"date"`
	Bedtime      dial.ClockTime `json:"bedtime"`
	WakeTime     dial.ClockTime `json:"wake_time"`
	SleepMinutes int            `json:"sleep_minutes"`
	Sleep        string         `json:"sleep"`
	Quality      int            `json:"quality"`
}

type WeeklyReview struct {
	Days              []DayReview `json:"days"`
	AverageSleepMin   int         `json:"average_sleep_minutes"`
	AverageSleep      string      `json:"average_sleep"`
	AverageQuality    float64     `json:"average_quality"`
	CurrentStreakDays int         `json:"current_streak_days"`
	LongestStreakDays int         `json:"longest_streak_days"`
}

// CalculateWeeklyReview summarizes the last seven days of check-ins ending
// at now, plus the streaks over the whole history. checkins must be sorted
// newest date first, the order the repositories return.
func CalculateWeeklyReview(now time.Time, checkins []internal.CheckIn) WeeklyReview {
	cutoff := now.AddDate(0, 0, -6).Format(dateLayout)

	review := WeeklyReview{Days: []DayReview{}}
	totalSleep := time.Duration(0)
	totalQuality := 0

	for _, c := range checkins {
		if c.Date < cutoff {
			continue
		}
		d := c.SleepDuration()
		review.Days = append(review.Days, DayReview{
			Date:         c.Date,
			Bedtime:      c.Bedtime,
			WakeTime:     c.WakeTime,
			SleepMinutes: int(d.Minutes()),
			Sleep:        FormatDuration(d),
			Quality:      c.SleepQuality,
		})
		totalSleep += d
		totalQuality += c.SleepQuality
	}

	if n := len(review.Days); n > 0 {
		avg := totalSleep / time.Duration(n)
		review.AverageSleepMin = int(avg.Minutes())
		review.AverageSleep = FormatDuration(avg)
		review.AverageQuality = float64(totalQuality) / float64(n)
	}

	review.CurrentStreakDays = currentStreak(now, checkins)
	review.LongestStreakDays = longestStreak(checkins)
	return review
}

// currentStreak counts consecutive checked-in days ending today, or ending
// yesterday when today's check-in hasn't happened yet.
func currentStreak(now time.Time, checkins []internal.CheckIn) int {
	seen := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		seen[c.Date] = true
	}

	day := now
	if !seen[day.Format(dateLayout)] {
		day = day.AddDate(0, 0, -1)
		if !seen[day.Format(dateLayout)] {
			return 0
		}
	}

	streak := 0
	for seen[day.Format(dateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the longest run of consecutive check-in dates over
// the whole history.
func longestStreak(checkins []internal.CheckIn) int {
	if len(checkins) == 0 {
		return 0
	}

	longest, run := 0, 0
	var prev time.Time
	// checkins arrive newest first; walk oldest to newest.
	for i := len(checkins) - 1; i >= 0; i-- {
		d, err := time.Parse(dateLayout, checkins[i].Date)
		if err != nil {
			continue
		}
		if run > 0 && d.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	return longest
}
