package models

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string // never exposed to templates
	CreatedAt    time.Time
}

// Sighting is one recorded wildlife observation. Username is a loose string
// reference to the owning user; there is no foreign key behind it.
type Sighting struct {
	ID          int64
	Username    string
	Animal      string
	Location    string
	Day         string
	Time        string
	Number      int
	MaleCount   *int
	FemaleCount *int
	CreatedAt   time.Time
}
