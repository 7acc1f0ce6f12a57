package domain

import "time"

// BuildInfo records the last successful build of a named database.
type BuildInfo struct {
	DatabaseName  string    `json:"database_name,omitzero"`
	DBType        DBType    `json:"db_type,omitzero"`
	Prefix        string    `json:"prefix,omitzero"`
	SequenceCount int       `json:"sequence_count,omitzero"`
	Fingerprint   string    `json:"fingerprint,omitzero"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
}
