package handler

import (
	"time"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// --- Request → Service input ---

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		DateAdded: req.DateAdded,
	}
}

func toCaseFileInput(req caseFileRequest) ports.CaseFileInput {
	return ports.CaseFileInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Subject:     req.Subject,
		Date:        req.Date,
		Place:       req.Place,
		Court:       req.Court,
		Description: req.Description,
	}
}

func toOtherDocumentInput(req otherDocumentRequest) ports.OtherDocumentInput {
	in := ports.OtherDocumentInput{
		Title:        req.Title,
		Type:         req.Type,
		Description:  req.Description,
		Author:       req.Author,
		Source:       req.Source,
		Jurisdiction: req.Jurisdiction,
		Court:        req.Court,
		CaseNumber:   req.CaseNumber,
		Year:         req.Year,
		Notes:        req.Notes,
		Date:         req.Date,
	}
	if req.Tags != nil {
		in.Tags = []string(*req.Tags)
		in.TagsSet = true
	}
	return in
}

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	}
}

// --- Domain → Views ---

func toClientView(c *domain.Client) clientView {
	return clientView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		DateAdded: c.DateAdded,
		Active:    c.State.IsActive(),
	}
}

func toCaseFileView(cf *domain.CaseFile) caseFileView {
	return caseFileView{
		ID:                  cf.ID,
		ClientID:            cf.ClientID,
		Title:               cf.Title,
		Subject:             cf.Subject,
		Date:                cf.Date,
		Place:               cf.Place,
		Court:               cf.Court,
		Description:         cf.Description,
		Documents:           []string{},
		GoogleDriveFolderID: cf.DriveFolderID,
		CreatedAt:           formatTimestamp(cf.CreatedAt),
		UpdatedAt:           formatTimestamp(cf.UpdatedAt),
	}
}

func toOtherDocumentView(d *domain.OtherDocument) otherDocumentView {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return otherDocumentView{
		ID:                  d.ID,
		Title:               d.Title,
		Type:                d.Type,
		Description:         d.Description,
		Author:              d.Author,
		Tags:                tags,
		Source:              d.Source,
		Jurisdiction:        d.Jurisdiction,
		Court:               d.Court,
		CaseNumber:          d.CaseNumber,
		Year:                d.Year,
		Notes:               d.Notes,
		DateAdded:           d.DateAdded,
		Documents:           []string{},
		GoogleDriveFolderID: d.DriveFolderID,
		CreatedAt:           formatTimestamp(d.CreatedAt),
		UpdatedAt:           formatTimestamp(d.UpdatedAt),
	}
}

func toStoredFileViews(files []domain.StoredFile) []storedFileView {
	out := make([]storedFileView, 0, len(files))
	for _, f := range files {
		out = append(out, storedFileView{ID: f.ID, Name: f.Name, MimeType: f.MimeType, Size: f.Size})
	}
	return out
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:      u.ID,
		Name:    u.Name,
		Role:    u.Role,
		Avatar:  u.Avatar,
		Phone:   u.Phone,
		Email:   u.Email,
		Deleted: !u.State.IsActive(),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.TimestampLayout)
}
