package render

import (
	"sort"
	"time"

	"github.com/fakeyudi/lsgit/internal/history"
)

// Row is one rendered line of the listing.
type Row struct {
	Kind    history.EntryKind `json:"kind"`
	Name    string            `json:"name"`
	Summary string            `json:"summary"`
	Since   string            `json:"since"`
	Time    int64             `json:"time"`
}

// BuildRows converts resolved entries into rows relative to now:
// directories first, then files, each group sorted by name.
func BuildRows(entries []history.Entry, now time.Time) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Kind:    e.Kind,
			Name:    e.Name,
			Summary: e.Summary,
			Since:   TimeSince(now.Unix() - e.Time),
			Time:    e.Time,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind == history.Directory
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
