package models

// Zone defines the zone model based on the 'zones' table
type Zone struct {
	ID     int64  `json:"id" db:"id" example:"1"`                 // Unique identifier for the zone
	Name   string `json:"name" db:"name" example:"Lagos Zone 2"`  // Zone display name
	Code   string `json:"code" db:"code" example:"LZ2"`           // Short zone code
	Region string `json:"region" db:"region" example:"SouthWest"` // Geographic region
}
