package domain

import "time"

type ID string

type Business struct {
	ID      ID
	Name    string
	Address string
	Phone   string
	AddedOn time.Time
}

// Summary is the listing projection; addedOn is excluded there.
type Summary struct {
	ID      ID
	Name    string
	Address string
	Phone   string
}
