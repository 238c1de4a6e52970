package render

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestTimeSinceBuckets(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{-30, "0 seconds ago"},
		{0, "0 seconds ago"},
		{45, "45 seconds ago"},
		{59, "59 seconds ago"},
		{60, "1 minute ago"},
		{90, "1 minute ago"},
		{120, "2 minutes ago"},
		{3599, "59 minutes ago"},
		{3600, "1 hour ago"},
		{7199, "1 hour ago"},
		{7300, "2 hours ago"},
		{86399, "23 hours ago"},
		{86400, "yesterday"},
		{172799, "yesterday"},
		{172800, "2 days ago"},
		{2678399, "30 days ago"},
		{2678400, "1 month ago"},
		{5356800, "2 months ago"},
		{40000000, "14 months ago"},
	}
	for _, tt := range tests {
		if got := TimeSince(tt.seconds); got != tt.want {
			t.Errorf("TimeSince(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// Feature: lsgit, Property 3: Every age maps to exactly one "ago" bucket
func TestTimeSinceAlwaysReadable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Int64Range(-1_000_000, 1_000_000_000).Draw(t, "seconds")
		got := TimeSince(s)
		if got != "yesterday" && !strings.HasSuffix(got, " ago") {
			t.Fatalf("TimeSince(%d) = %q", s, got)
		}
	})
}
