package models

import "time"

// Term is one glossary entry. Keyword is unique across the directory.
type Term struct {
	ID          int64
	Keyword     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TermPatch carries the optional fields of an update; nil means unchanged.
type TermPatch struct {
	Keyword     *string
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p TermPatch) Empty() bool {
	return p.Keyword == nil && p.Description == nil
}
