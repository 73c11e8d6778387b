package database

import "internsift/app/job"

// ExistingKeys is everything the identity index needs at startup.
type ExistingKeys struct {
	IdentityKeys []string
	URLs         []string
	JobIDs       []string
}

// JobStore is the persistence contract the pipeline depends on. Appends
// are additive at assigned row offsets, never overwrites, so reprocessing
// an already-committed candidate after a restart is safe.
type JobStore interface {
	LoadExistingKeys() (*ExistingKeys, error)
	AppendRows(valid, discarded []job.Row) (int, int, error)
	RecentRows(sheet string, limit int) ([]job.Row, error)
	RowCounts() (valid int, discarded int, err error)
}
