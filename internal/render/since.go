package render

import "fmt"

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	month  = 31 * day
)

// TimeSince formats an age in seconds as a human-readable "time since"
// string. Negative ages, from clock skew, are treated as zero.
func TimeSince(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < minute:
		return fmt.Sprintf("%d seconds ago", seconds)
	case seconds < 2*minute:
		return "1 minute ago"
	case seconds < hour:
		return fmt.Sprintf("%d minutes ago", seconds/minute)
	case seconds < 2*hour:
		return "1 hour ago"
	case seconds < day:
		return fmt.Sprintf("%d hours ago", seconds/hour)
	case seconds < 2*day:
		return "yesterday"
	case seconds < month:
		return fmt.Sprintf("%d days ago", seconds/day)
	case seconds < 2*month:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", seconds/month)
	}
}
