// Package drive implements the folder store on the Google Drive v3 API.
package drive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	defaultTimeout = 15 * time.Second
	pageSize       = 1000
)

// Config selects the service account credentials. CredentialsJSON wins
// over CredentialsFile; with neither set, Application Default Credentials apply.
type Config struct {
	CredentialsJSON string
	CredentialsFile string
}

// ClientOptions builds the option set for drive.NewService.
func ClientOptions(cfg Config) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(drive.DriveScope)}
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return opts
}

// Observer receives the outcome and latency of every Drive call.
type Observer interface {
	ObserveDrive(operation string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveDrive(string, time.Duration, error) {}

// Store is a ports.FolderStore backed by Drive.
type Store struct {
	svc *drive.Service
	obs Observer
}

func NewStore(svc *drive.Service) *Store {
	return &Store{svc: svc, obs: nopObserver{}}
}

// WithObserver reports every call to obs.
func (s *Store) WithObserver(obs Observer) *Store {
	if obs != nil {
		s.obs = obs
	}
	return s
}

// Connect creates the Drive service from cfg.
func Connect(ctx context.Context, cfg Config, extra ...option.ClientOption) (*Store, error) {
	svc, err := drive.NewService(ctx, append(ClientOptions(cfg), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return NewStore(svc), nil
}

func (s *Store) FindFolder(ctx context.Context, parentID, name string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and name='%s' and trashed=false",
		escapeQuery(parentID), folderMimeType, escapeQuery(name))

	var res *drive.FileList
	err := s.observe("find_folder", func() (err error) {
		res, err = s.svc.Files.List().
			Q(q).
			Spaces("drive").
			Fields("files(id, name)").
			PageSize(1).
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return "", false, fmt.Errorf("find folder %q in %s: %w", name, parentID, err)
	}
	if len(res.Files) == 0 {
		return "", false, nil
	}
	return res.Files[0].Id, true, nil
}

func (s *Store) CreateFolder(ctx context.Context, parentID, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}

	var created *drive.File
	err := s.observe("create_folder", func() (err error) {
		created, err = s.svc.Files.Create(folder).
			Fields("id").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return "", fmt.Errorf("create folder %q in %s: %w", name, parentID, err)
	}
	return created.Id, nil
}

// ListChildren follows every result page.
func (s *Store) ListChildren(ctx context.Context, folderID string) ([]domain.StoredFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := fmt.Sprintf("'%s' in parents and trashed=false", escapeQuery(folderID))
	call := s.svc.Files.List().
		Q(q).
		Spaces("drive").
		Fields("nextPageToken, files(id, name, mimeType, size)").
		PageSize(pageSize).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)

	files := []domain.StoredFile{}
	err := s.observe("list_children", func() error {
		return call.Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				files = append(files, domain.StoredFile{
					ID:       f.Id,
					Name:     f.Name,
					MimeType: f.MimeType,
					Size:     f.Size,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}
	return files, nil
}

func (s *Store) Delete(ctx context.Context, fileID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := s.observe("delete", func() error {
		return s.svc.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", fileID, err)
	}
	return nil
}

// Ping checks that the credentials can reach Drive.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.svc.About.Get().Fields("user").Context(ctx).Do()
	return err
}

func (s *Store) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.obs.ObserveDrive(operation, time.Since(start), err)
	return err
}

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// escapeQuery quotes a value for use inside a single-quoted Drive query literal.
func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}
