package domain

import "time"

// Bucketlist is a named collection of items owned by exactly one user.
// Names are unique per owner, not globally.
type Bucketlist struct {
	ID        int64
	UserID    int64
	Name      string
	Items     []Item // populated on single-resource reads only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item belongs to exactly one bucketlist. Names are unique per bucketlist.
type Item struct {
	ID           int64
	BucketlistID int64
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Page describes an offset/limit window over a listing.
type Page struct {
	Number int // 1-based page number
	Limit  int
}

// Offset converts the 1-based page number to a row offset.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}
