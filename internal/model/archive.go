package model

import "time"

// ArchiveRecord is the immutable record written when a session starts.
// Live session state never passes through storage; only these post-start
// records do.
type ArchiveRecord struct {
	GameCode  GameCode
	Players   []Player
	StartedAt time.Time
}
