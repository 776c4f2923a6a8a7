package domain

import (
	"strings"
	"time"
)

// OtherDocument ("otro") is a reference document not tied to a client or case.
type OtherDocument struct {
	ID            string
	Title         string
	Type          string
	Description   string
	Author        string
	Tags          []string
	Source        string
	Jurisdiction  string
	Court         string
	CaseNumber    string
	Year          string
	Notes         string
	DateAdded     string
	DriveFolderID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SplitTags parses comma-separated tag text.
func SplitTags(csv string) []string {
	return NormalizeTags(strings.Split(csv, ","))
}

// NormalizeTags trims every tag and drops the empty ones. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
