package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedUser(t *testing.T, s *Store, id string) *models.User {
	t.Helper()
	user, err := s.UpsertUser(&models.User{ID: id})
	require.NoError(t, err)
	return user
}

func seedProject(t *testing.T, s *Store, userID, title, day string) *models.Project {
	t.Helper()
	project := &models.Project{
		HackathonName: "HackMIT",
		ProjectTitle:  title,
		Description:   "a project",
		Date:          date(day),
	}
	require.NoError(t, s.CreateProject(userID, project))
	return project
}

func TestUpsertUser_InsertThenMerge(t *testing.T) {
	s := New()

	created, err := s.UpsertUser(&models.User{ID: "u1", Email: strPtr("ada@example.com")})
	require.NoError(t, err)
	require.NotNil(t, created.Email)
	assert.Equal(t, "ada@example.com", *created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.UpdateUsername("u1", "ada")
	require.NoError(t, err)

	merged, err := s.UpsertUser(&models.User{
		ID:        "u1",
		Email:     strPtr("ada@new.example.com"),
		FirstName: strPtr("Ada"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@new.example.com", *merged.Email)
	assert.Equal(t, "Ada", *merged.FirstName)
	require.NotNil(t, merged.Username, "username must survive re-login")
	assert.Equal(t, "ada", *merged.Username)
	assert.True(t, merged.UpdatedAt.After(created.UpdatedAt))
}

func TestUpsertUser_DuplicateEmailOtherID(t *testing.T) {
	s := New()

	_, err := s.UpsertUser(&models.User{ID: "u1", Email: strPtr("same@example.com")})
	require.NoError(t, err)

	_, err = s.UpsertUser(&models.User{ID: "u2", Email: strPtr("same@example.com")})
	assert.ErrorIs(t, err, services.ErrDuplicate)
}

func TestGetUser_AbsenceIsNotAnError(t *testing.T) {
	s := New()

	user, err := s.GetUser("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = s.GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUsername_UniqueAcrossUsers(t *testing.T) {
	s := New()
	seedUser(t, s, "u1")
	seedUser(t, s, "u2")

	first, err := s.UpdateUsername("u1", "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", *first.Username)

	_, err = s.UpdateUsername("u2", "foo")
	assert.ErrorIs(t, err, services.ErrDuplicate)

	// re-claiming your own username is not a conflict
	again, err := s.UpdateUsername("u1", "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", *again.Username)

	missing, err := s.UpdateUsername("ghost", "bar")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateProfile_SetsBio(t *testing.T) {
	s := New()
	seeded := seedUser(t, s, "u1")

	updated, err := s.UpdateProfile("u1", strPtr("I build things"))
	require.NoError(t, err)
	assert.Equal(t, "I build things", *updated.Bio)
	assert.True(t, updated.UpdatedAt.After(seeded.UpdatedAt))

	missing, err := s.UpdateProfile("ghost", strPtr("x"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateProject_RoundTrip(t *testing.T) {
	s := New()
	seedUser(t, s, "u1")

	project := &models.Project{
		HackathonName: "HackMIT",
		ProjectTitle:  "EcoTrack",
		Description:   "carbon tracking",
		Date:          date("2024-09-01"),
	}
	require.NoError(t, s.CreateProject("u1", project))

	assert.NotZero(t, project.ID)
	assert.Equal(t, "u1", project.UserID)
	require.NotNil(t, project.Technologies)
	assert.Len(t, project.Technologies, 0)

	stored, err := s.GetProject(project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "EcoTrack", stored.ProjectTitle)
	assert.Equal(t, "HackMIT", stored.HackathonName)
	assert.Equal(t, "carbon tracking", stored.Description)
	assert.True(t, stored.Date.Equal(date("2024-09-01")))
}

func TestCreateProject_FreshIDs(t *testing.T) {
	s := New()
	p1 := seedProject(t, s, "u1", "one", "2024-01-01")
	p2 := seedProject(t, s, "u1", "two", "2024-01-02")

	assert.NotEqual(t, p1.ID, p2.ID)
}

func TestUpdateProject_PartialOverwrite(t *testing.T) {
	s := New()
	created := seedProject(t, s, "u1", "EcoTrack", "2024-09-01")

	updated, err := s.UpdateProject(created.ID, services.ProjectUpdate{
		ProjectTitle: strPtr("EcoTrack 2"),
		Technologies: &[]string{"Go", "React", "Go"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "EcoTrack 2", updated.ProjectTitle)
	assert.Equal(t, "HackMIT", updated.HackathonName, "omitted field untouched")
	assert.Equal(t, "a project", updated.Description, "omitted field untouched")
	assert.Equal(t, []string{"Go", "React", "Go"}, []string(updated.Technologies),
		"order and duplicates preserved")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt strictly increases")
}

func TestUpdateProject_UnknownID(t *testing.T) {
	s := New()

	updated, err := s.UpdateProject(42, services.ProjectUpdate{ProjectTitle: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteProject_IdempotentEffect(t *testing.T) {
	s := New()
	created := seedProject(t, s, "u1", "EcoTrack", "2024-09-01")

	removed, err := s.DeleteProject(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteProject(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.DeleteProject(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetProjectsByUserID_NewestDateFirst(t *testing.T) {
	s := New()
	seedProject(t, s, "u1", "old", "2023-05-01")
	seedProject(t, s, "u1", "new", "2024-09-01")
	seedProject(t, s, "u1", "mid", "2024-01-15")
	seedProject(t, s, "u2", "other", "2025-01-01")

	projects, err := s.GetProjectsByUserID("u1")
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "new", projects[0].ProjectTitle)
	assert.Equal(t, "mid", projects[1].ProjectTitle)
	assert.Equal(t, "old", projects[2].ProjectTitle)

	empty, err := s.GetProjectsByUserID("u3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestSearchProjects_TitleSubstring(t *testing.T) {
	s := New()
	seedProject(t, s, "u1", "EcoTrack", "2024-09-01")
	seedProject(t, s, "u1", "Tracker", "2024-08-01")
	seedProject(t, s, "u1", "Chatbot", "2024-07-01")
	seedProject(t, s, "u2", "EcoTrack", "2024-06-01")

	matches, err := s.SearchProjects("u1", "Track")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "EcoTrack", matches[0].ProjectTitle)
	assert.Equal(t, "Tracker", matches[1].ProjectTitle)

	// matching is case-sensitive, like the store default
	none, err := s.SearchProjects("u1", "track")
	require.NoError(t, err)
	assert.Len(t, none, 0)

	all, err := s.SearchProjects("u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
