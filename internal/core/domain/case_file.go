package domain

import "time"

// CaseFile ("expediente") is a legal matter owned by one active client.
// Its documents live in the Drive folder referenced by DriveFolderID.
type CaseFile struct {
	ID            string
	ClientID      string
	Title         string
	Subject       string
	Date          string
	Place         string
	Court         string
	Description   string
	DriveFolderID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StoredFile describes an entry inside a record's storage folder.
type StoredFile struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}
