// Package models defines the glossary entries as the client sees them.
package models

import "time"

type Term struct {
	ID          int64     `json:"id"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Patch holds the fields to change; nil leaves a field as it is.
type Patch struct {
	Keyword     *string `json:"keyword,omitempty"`
	Description *string `json:"description,omitempty"`
}
