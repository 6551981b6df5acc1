package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

func volunteer(id string) model.User {
	return model.User{ID: id, Name: "V" + id, Skills: []model.Skill{model.SkillCook}, Region: model.RegionSouth}
}

func newEvents(t *testing.T, capacity int, matched ...string) *EventRepository {
	t.Helper()
	event := model.Event{
		ID:                "1",
		Title:             "Kitchen",
		Region:            model.RegionSouth,
		RequiredSkills:    []model.Skill{model.SkillCook},
		MatchedVolunteers: []model.User{},
		MaxVolunteers:     capacity,
	}
	for _, id := range matched {
		event.MatchedVolunteers = append(event.MatchedVolunteers, volunteer(id))
	}
	return NewEventRepository(NewSequence([]string{"1"}), []model.Event{event})
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     []string
	}{
		{name: "empty", want: []string{"1", "2"}},
		{name: "after highest", existing: []string{"3", "10", "2"}, want: []string{"11", "12"}},
		{name: "ignores non numeric", existing: []string{"abc", "4"}, want: []string{"5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequence(tt.existing)
			assert.Equal(t, tt.want, []string{s.NextID(), s.NextID()})
		})
	}
}

func TestSequenceConcurrentIDsAreUnique(t *testing.T) {
	s := NewSequence(nil)
	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.NextID()
			mu.Lock()
			defer mu.Unlock()
			seen[id] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestUUIDs(t *testing.T) {
	var g UUIDs
	a, b := g.NextID(), g.NextID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	seed := []model.User{
		{ID: "1", Name: "Alex", Email: "alex@example.com", Skills: []model.Skill{model.SkillDance}},
		{ID: "2", Name: "Casey", Email: "casey@example.com", IsOrganizer: true},
	}
	repo := NewUserRepository(NewSequence([]string{"1", "2"}), seed)

	created, err := repo.Create(ctx, model.RegisterUserRequest{
		Name: "Ann", Email: "alex@example.com", Skills: []model.Skill{model.SkillCook}, Region: model.RegionSouth,
	})
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
	assert.False(t, created.IsOrganizer)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "3", users[2].ID)

	byEmail, err := repo.GetByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", byEmail.ID, "first match wins")

	_, err = repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrNotFound)

	// Returned values are copies.
	users[0].Skills[0] = model.SkillSports
	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, model.SkillDance, again.Skills[0])
}

func TestEventRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := newEvents(t, 2)
	organizer := model.User{ID: "9", Name: "Org", IsOrganizer: true}

	event, err := repo.Create(ctx, model.CreateEventRequest{
		Title:          "Cleanup",
		Region:         model.RegionCentral,
		RequiredSkills: []model.Skill{model.SkillClean},
		MaxVolunteers:  4,
	}, organizer)
	require.NoError(t, err)
	assert.Equal(t, "2", event.ID)
	assert.True(t, event.IsActive)
	assert.NotNil(t, event.MatchedVolunteers)
	assert.Empty(t, event.MatchedVolunteers)
	assert.Equal(t, organizer, event.Organizer)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventRepositoryCreateWithVolunteers(t *testing.T) {
	organizer := model.User{ID: "9", Name: "Org", IsOrganizer: true}
	req := model.CreateEventRequest{Title: "Cleanup", Region: model.RegionSouth, MaxVolunteers: 2}

	tests := []struct {
		name       string
		volunteers []string
		wantErr    error
		want       []string
	}{
		{name: "keeps order", volunteers: []string{"b", "a"}, want: []string{"b", "a"}},
		{name: "over capacity", volunteers: []string{"a", "b", "c"}, wantErr: ErrEventFull},
		{name: "duplicate", volunteers: []string{"a", "a"}, wantErr: ErrAlreadyRegistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newEvents(t, 1)
			var vs []model.User
			for _, id := range tt.volunteers {
				vs = append(vs, volunteer(id))
			}

			event, err := repo.Create(ctx, req, organizer, vs...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				events, err := repo.List(ctx)
				require.NoError(t, err)
				assert.Len(t, events, 1, "nothing stored")
				return
			}
			require.NoError(t, err)
			stored, err := repo.GetByID(ctx, event.ID)
			require.NoError(t, err)
			var got []string
			for _, v := range stored.MatchedVolunteers {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.want, got)

			// The stored list does not alias the caller's slice.
			vs[0].Skills[0] = model.SkillDance
			stored, err = repo.GetByID(ctx, event.ID)
			require.NoError(t, err)
			assert.Equal(t, model.SkillCook, stored.MatchedVolunteers[0].Skills[0])
		})
	}
}

func TestEventRepositoryJoin(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		matched []string
		eventID string
		userID  string
		wantErr error
		want    []string
	}{
		{name: "first join", max: 2, eventID: "1", userID: "a", want: []string{"a"}},
		{name: "appends in order", max: 3, matched: []string{"a"}, eventID: "1", userID: "b", want: []string{"a", "b"}},
		{name: "full", max: 1, matched: []string{"a"}, eventID: "1", userID: "b", wantErr: ErrEventFull, want: []string{"a"}},
		{name: "duplicate", max: 3, matched: []string{"a"}, eventID: "1", userID: "a", wantErr: ErrAlreadyRegistered, want: []string{"a"}},
		{name: "full wins over duplicate", max: 1, matched: []string{"a"}, eventID: "1", userID: "a", wantErr: ErrEventFull, want: []string{"a"}},
		{name: "unknown event", max: 1, eventID: "7", userID: "a", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newEvents(t, tt.max, tt.matched...)

			_, err := repo.Join(ctx, tt.eventID, volunteer(tt.userID))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.want == nil {
				return
			}
			event, err := repo.GetByID(ctx, "1")
			require.NoError(t, err)
			var got []string
			for _, v := range event.MatchedVolunteers {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventRepositoryJoinLeavesEarlierCopiesAlone(t *testing.T) {
	ctx := context.Background()
	repo := newEvents(t, 3, "a")

	before, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	_, err = repo.Join(ctx, "1", volunteer("b"))
	require.NoError(t, err)
	assert.Len(t, before.MatchedVolunteers, 1)
}

func TestEventRepositoryConcurrentJoins(t *testing.T) {
	ctx := context.Background()
	repo := newEvents(t, 5)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every volunteer tries twice.
			_, _ = repo.Join(ctx, "1", volunteer(fmt.Sprint(i%20)))
		}(i)
	}
	wg.Wait()

	event, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, event.MatchedVolunteers, 5)
	seen := map[string]bool{}
	for _, v := range event.MatchedVolunteers {
		assert.False(t, seen[v.ID])
		seen[v.ID] = true
	}
}

func TestRepositoriesHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users := NewUserRepository(NewSequence(nil), nil)
	_, err := users.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	events := newEvents(t, 1)
	_, err = events.Join(ctx, "1", volunteer("a"))
	assert.ErrorIs(t, err, context.Canceled)
}
