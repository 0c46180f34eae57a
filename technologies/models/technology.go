package models

// Technology is a skill that can be attached to users and jobs. Matching
// compares the two sets.
type Technology struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateTechnologyRequest is the POST /technologies body.
type CreateTechnologyRequest struct {
	Name string `json:"name"`
}
