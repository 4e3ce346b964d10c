// Package memstore holds an in-memory implementation of
// services.Storage with the same observable contract as the Postgres
// one, used as the substitute store in tests.
package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

type Store struct {
	mu       sync.Mutex
	users    map[string]*models.User
	projects map[int]*models.Project
	nextID   int
}

func New() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		projects: make(map[int]*models.Project),
		nextID:   1,
	}
}

var _ services.Storage = (*Store)(nil)

func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *Store) UpsertUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, other := range s.users {
		if id == user.ID {
			continue
		}
		if strPtrEqual(other.Email, user.Email) || strPtrEqual(other.Username, user.Username) {
			return nil, services.ErrDuplicate
		}
	}

	existing, ok := s.users[user.ID]
	if !ok {
		stored := cloneUser(user)
		now := time.Now()
		stored.CreatedAt = now
		stored.UpdatedAt = now
		s.users[user.ID] = stored
		return cloneUser(stored), nil
	}

	// Merge only the identity fields carried by the login event;
	// username and bio belong to the user.
	existing.Email = clonePtr(user.Email)
	existing.FirstName = clonePtr(user.FirstName)
	existing.LastName = clonePtr(user.LastName)
	existing.ProfileImageURL = clonePtr(user.ProfileImageURL)
	existing.UpdatedAt = bump(existing.UpdatedAt)
	return cloneUser(existing), nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username != nil && *user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateUsername(id string, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	for otherID, other := range s.users {
		if otherID != id && other.Username != nil && *other.Username == username {
			return nil, services.ErrDuplicate
		}
	}
	user.Username = &username
	user.UpdatedAt = bump(user.UpdatedAt)
	return cloneUser(user), nil
}

func (s *Store) UpdateProfile(id string, bio *string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	user.Bio = clonePtr(bio)
	user.UpdatedAt = bump(user.UpdatedAt)
	return cloneUser(user), nil
}

func (s *Store) GetProject(id int) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	return cloneProject(project), nil
}

func (s *Store) GetProjectsByUserID(userID string) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(userID, ""), nil
}

func (s *Store) CreateProject(userID string, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneProject(project)
	stored.ID = s.nextID
	s.nextID++
	stored.UserID = userID
	if stored.Technologies == nil {
		stored.Technologies = pq.StringArray{}
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.projects[stored.ID] = stored

	*project = *cloneProject(stored)
	return nil
}

func (s *Store) UpdateProject(id int, update services.ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	if update.HackathonName != nil {
		project.HackathonName = *update.HackathonName
	}
	if update.ProjectTitle != nil {
		project.ProjectTitle = *update.ProjectTitle
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Date != nil {
		project.Date = *update.Date
	}
	if update.Achievement != nil {
		project.Achievement = clonePtr(update.Achievement)
	}
	if update.TeamSize != nil {
		size := *update.TeamSize
		project.TeamSize = &size
	}
	if update.Role != nil {
		project.Role = clonePtr(update.Role)
	}
	if update.DemoURL != nil {
		project.DemoURL = clonePtr(update.DemoURL)
	}
	if update.GithubURL != nil {
		project.GithubURL = clonePtr(update.GithubURL)
	}
	if update.DevpostURL != nil {
		project.DevpostURL = clonePtr(update.DevpostURL)
	}
	if update.Technologies != nil {
		project.Technologies = append(pq.StringArray{}, *update.Technologies...)
	}
	if update.ImageURL != nil {
		project.ImageURL = clonePtr(update.ImageURL)
	}
	project.UpdatedAt = bump(project.UpdatedAt)
	return cloneProject(project), nil
}

func (s *Store) DeleteProject(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

func (s *Store) SearchProjects(userID string, query string) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(userID, query), nil
}

// collect returns the user's projects whose title contains query
// (empty query matches all), newest date first, id as tie-break.
// Callers must hold the lock.
func (s *Store) collect(userID string, query string) []models.Project {
	out := make([]models.Project, 0)
	for _, project := range s.projects {
		if project.UserID != userID {
			continue
		}
		if query != "" && !strings.Contains(project.ProjectTitle, query) {
			continue
		}
		out = append(out, *cloneProject(project))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// bump refreshes a modification timestamp, always strictly after the
// previous value even within clock resolution.
func bump(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func strPtrEqual(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func cloneUser(u *models.User) *models.User {
	out := *u
	out.Email = clonePtr(u.Email)
	out.FirstName = clonePtr(u.FirstName)
	out.LastName = clonePtr(u.LastName)
	out.ProfileImageURL = clonePtr(u.ProfileImageURL)
	out.Username = clonePtr(u.Username)
	out.Bio = clonePtr(u.Bio)
	out.Projects = nil
	return &out
}

func cloneProject(p *models.Project) *models.Project {
	out := *p
	out.Achievement = clonePtr(p.Achievement)
	if p.TeamSize != nil {
		size := *p.TeamSize
		out.TeamSize = &size
	}
	out.Role = clonePtr(p.Role)
	out.DemoURL = clonePtr(p.DemoURL)
	out.GithubURL = clonePtr(p.GithubURL)
	out.DevpostURL = clonePtr(p.DevpostURL)
	out.ImageURL = clonePtr(p.ImageURL)
	if p.Technologies != nil {
		out.Technologies = append(pq.StringArray{}, p.Technologies...)
	}
	out.User = models.User{}
	return &out
}
