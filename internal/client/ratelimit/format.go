package ratelimit

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// FormatResetTime renders the time left until reset (a unix timestamp),
// rounded up to whole minutes below an hour and to whole hours above.
func FormatResetTime(reset int64, now time.Time) string {
	diff := time.Unix(reset, 0).Sub(now)
	if diff <= 0 {
		return "Now"
	}

	minutes := int(math.Ceil(diff.Minutes()))
	if minutes < 60 {
		return plural(minutes, "minute")
	}
	hours := int(math.Ceil(float64(minutes) / 60))
	return plural(hours, "hour")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func SecondsUntilReset(reset int64, now time.Time) int64 {
	return max(0, reset-now.Unix())
}

func IsRateLimited(s models.RateLimitStatus) bool {
	return s.Remaining <= 0
}

// UsagePercentage is the consumed share of the quota, 0..100.
func UsagePercentage(s models.RateLimitStatus) int {
	if s.Limit <= 0 {
		return 0
	}
	used := s.Limit - s.Remaining
	return int(math.Round(float64(used) / float64(s.Limit) * 100))
}
