package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

var errStore = errors.New("store unavailable")

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

type stubClientRepo struct {
	clients map[string]*domain.Client
	deletes []string
	saveErr error
	// deleteErrs fails Delete for specific IDs.
	deleteErrs map[string]error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Get(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) ListActive(_ context.Context) ([]*domain.Client, error) {
	out := []*domain.Client{}
	for _, c := range r.clients {
		if c.State.IsActive() {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Save(_ context.Context, c *domain.Client) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) SetState(_ context.Context, id string, state domain.State) error {
	c, ok := r.clients[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.State = state
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if err := r.deleteErrs[id]; err != nil {
		return err
	}
	r.deletes = append(r.deletes, id)
	delete(r.clients, id)
	return nil
}

type stubCaseFileRepo struct {
	cases map[string]*domain.CaseFile
}

func newStubCaseFileRepo() *stubCaseFileRepo {
	return &stubCaseFileRepo{cases: make(map[string]*domain.CaseFile)}
}

func (r *stubCaseFileRepo) Get(_ context.Context, id string) (*domain.CaseFile, error) {
	cf, ok := r.cases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *cf
	return &clone, nil
}

func (r *stubCaseFileRepo) List(_ context.Context) ([]*domain.CaseFile, error) {
	out := []*domain.CaseFile{}
	for _, cf := range r.cases {
		clone := *cf
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCaseFileRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error) {
	all, _ := r.List(ctx)
	out := []*domain.CaseFile{}
	for _, cf := range all {
		if cf.ClientID == clientID {
			out = append(out, cf)
		}
	}
	return out, nil
}

func (r *stubCaseFileRepo) ExistsByTitleAndClient(_ context.Context, title, clientID, excludeID string) (bool, error) {
	for id, cf := range r.cases {
		if id == excludeID {
			continue
		}
		if domain.FoldKey(cf.Title) == domain.FoldKey(title) && cf.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCaseFileRepo) Save(_ context.Context, cf *domain.CaseFile) error {
	clone := *cf
	r.cases[cf.ID] = &clone
	return nil
}

func (r *stubCaseFileRepo) Delete(_ context.Context, id string) error {
	delete(r.cases, id)
	return nil
}

type stubOtherRepo struct {
	docs map[string]*domain.OtherDocument
}

func newStubOtherRepo() *stubOtherRepo {
	return &stubOtherRepo{docs: make(map[string]*domain.OtherDocument)}
}

func (r *stubOtherRepo) Get(_ context.Context, id string) (*domain.OtherDocument, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubOtherRepo) List(_ context.Context) ([]*domain.OtherDocument, error) {
	out := []*domain.OtherDocument{}
	for _, d := range r.docs {
		clone := *d
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOtherRepo) ExistsByTitleAndType(_ context.Context, title, docType, excludeID string) (bool, error) {
	for id, d := range r.docs {
		if id == excludeID {
			continue
		}
		if domain.FoldKey(d.Title) == domain.FoldKey(title) && domain.FoldKey(d.Type) == domain.FoldKey(docType) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubOtherRepo) Save(_ context.Context, d *domain.OtherDocument) error {
	clone := *d
	r.docs[d.ID] = &clone
	return nil
}

func (r *stubOtherRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if u.State.IsActive() {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	var fallback *domain.User
	for _, u := range r.users {
		if domain.FoldKey(u.Email) != domain.FoldKey(email) {
			continue
		}
		clone := *u
		if u.State.IsActive() {
			return &clone, nil
		}
		fallback = &clone
	}
	if fallback == nil {
		return nil, domain.ErrNotFound
	}
	return fallback, nil
}

func (r *stubUserRepo) ActiveEmailExists(_ context.Context, email, excludeID string) (bool, error) {
	for id, u := range r.users {
		if id != excludeID && u.State.IsActive() && domain.FoldKey(u.Email) == domain.FoldKey(email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) SetState(_ context.Context, id string, state domain.State) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.State = state
	return nil
}

type stubCounters struct {
	values map[string]int64
	err    error
}

func newStubCounters() *stubCounters {
	return &stubCounters{values: make(map[string]int64)}
}

func (c *stubCounters) Increment(_ context.Context, name string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.values[name]++
	return c.values[name], nil
}

type folderKey struct{ parent, name string }

// stubFolderStore is an in-memory folder tree with call counters.
type stubFolderStore struct {
	folders   map[folderKey]string
	children  map[string][]domain.StoredFile
	deleted   []string
	creates   int
	findErr   error
	deleteErr error
	next      int
}

func newStubFolderStore() *stubFolderStore {
	return &stubFolderStore{
		folders:  make(map[folderKey]string),
		children: make(map[string][]domain.StoredFile),
	}
}

func (s *stubFolderStore) FindFolder(_ context.Context, parentID, name string) (string, bool, error) {
	if s.findErr != nil {
		return "", false, s.findErr
	}
	id, ok := s.folders[folderKey{parentID, name}]
	return id, ok, nil
}

func (s *stubFolderStore) CreateFolder(_ context.Context, parentID, name string) (string, error) {
	s.creates++
	s.next++
	id := fmt.Sprintf("folder-%d", s.next)
	s.folders[folderKey{parentID, name}] = id
	return id, nil
}

func (s *stubFolderStore) ListChildren(_ context.Context, folderID string) ([]domain.StoredFile, error) {
	return s.children[folderID], nil
}

func (s *stubFolderStore) Delete(_ context.Context, fileID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, fileID)
	return nil
}

type stubLocker struct {
	locks   int
	unlocks int
	err     error
}

func (l *stubLocker) Lock(_ context.Context, _ string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.locks++
	return func() { l.unlocks++ }, nil
}
