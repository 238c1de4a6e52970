// Package history resolves, for each entry of a directory inside a git
// repository, the most recent non-merge commit that changed it.
package history

import "errors"

// EntryKind classifies a top-level path component of the listed directory.
type EntryKind int

const (
	File EntryKind = iota
	Directory
)

func (k EntryKind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "unknown"
	}
}

// MarshalText lets renderers emit the kind by name.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Attribution is the last known commit for one path component.
type Attribution struct {
	Summary string    `json:"summary"`
	Time    int64     `json:"time"` // committer time, seconds since epoch
	Kind    EntryKind `json:"kind"`
}

// Fact is a single attribution emitted by the walker for a path component.
type Fact struct {
	Component   string
	Attribution Attribution
}

// Entry is a resolved attribution for a name present in the live listing.
type Entry struct {
	Name string `json:"name"`
	Attribution
}

var (
	// ErrMissingSummary is returned when a commit has an empty message.
	ErrMissingSummary = errors.New("commit has no summary")
	// ErrMissingTime is returned when a commit has no committer timestamp.
	ErrMissingTime = errors.New("commit has no timestamp")
)
