package rosters

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/store"
)

const owner = "user-1"

func newTestService(t *testing.T) *Service {
	t.Helper()
	mem := store.NewMemory()
	return NewService(mem, mem, mem, nil)
}

func wantIssue(t *testing.T, err error, fragment string) {
	t.Helper()
	if httperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 with issue %q", err, fragment)
	}
	for _, issue := range httperr.IssuesOf(err) {
		if strings.Contains(issue.Msg, fragment) {
			return
		}
	}
	t.Fatalf("issues %v missing fragment %q", httperr.IssuesOf(err), fragment)
}

func TestPlayerLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "asha rao", JerseyNo: 7})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if p.Name != "Asha Rao" {
		t.Fatalf("name = %q, want title case", p.Name)
	}

	edited, err := svc.EditPlayer(ctx, p.ID, owner, PlayerInput{Name: "Asha Rao", JerseyNo: 9})
	if err != nil || edited.JerseyNo != 9 {
		t.Fatalf("EditPlayer = %+v, %v", edited, err)
	}

	got, err := svc.GetPlayer(ctx, p.ID, owner)
	if err != nil || got.JerseyNo != 9 {
		t.Fatalf("GetPlayer = %+v, %v", got, err)
	}

	deleted, err := svc.DeletePlayer(ctx, p.ID, owner)
	if err != nil || deleted.Name != "Asha Rao" {
		t.Fatalf("DeletePlayer = %+v, %v", deleted, err)
	}
	if _, err := svc.GetPlayer(ctx, p.ID, owner); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("GetPlayer after delete: %v", err)
	}
	if _, err := svc.DeletePlayer(ctx, p.ID, owner); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("second DeletePlayer: %v", err)
	}
}

func TestPlayerValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "Asha", JerseyNo: 7}); err != nil {
		t.Fatalf("seed player: %v", err)
	}

	tests := []struct {
		name     string
		in       PlayerInput
		fragment string
	}{
		{"missing name", PlayerInput{JerseyNo: 3}, "`name` is required"},
		{"duplicate name", PlayerInput{Name: "asha", JerseyNo: 3}, "Player with name Asha already exists"},
		{"negative jersey", PlayerInput{Name: "Mira", JerseyNo: -1}, "`jerseyNo` must be between 0 and 999"},
		{"jersey too large", PlayerInput{Name: "Mira", JerseyNo: 1000}, "`jerseyNo` must be between 0 and 999"},
		{"duplicate jersey", PlayerInput{Name: "Mira", JerseyNo: 7}, "Player with jersey no 7 already exists"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePlayer(ctx, owner, tc.in)
			wantIssue(t, err, tc.fragment)
		})
	}
}

func TestPlayerEditKeepsOwnNameAndJersey(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "Asha", JerseyNo: 7})

	if _, err := svc.EditPlayer(ctx, p.ID, owner, PlayerInput{Name: "Asha", JerseyNo: 7}); err != nil {
		t.Fatalf("editing a player with its own name and jersey: %v", err)
	}

	other, _ := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "Mira", JerseyNo: 8})
	_, err := svc.EditPlayer(ctx, other.ID, owner, PlayerInput{Name: "Mira", JerseyNo: 7})
	wantIssue(t, err, "Player with jersey no 7 already exists")
}

func TestDeletedPlayerFreesNameAndJersey(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "Asha", JerseyNo: 7})
	if _, err := svc.DeletePlayer(ctx, p.ID, owner); err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}
	if _, err := svc.CreatePlayer(ctx, owner, PlayerInput{Name: "Asha", JerseyNo: 7}); err != nil {
		t.Fatalf("recreating after soft delete: %v", err)
	}
}

func TestTeamLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, owner, TeamInput{Name: "royal lions", ShortName: " lio "})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.Name != "Royal Lions" || team.ShortName != "LIO" {
		t.Fatalf("team = %+v", team)
	}

	edited, err := svc.EditTeam(ctx, team.ID, owner, TeamInput{Name: "Royal Lions CC", ShortName: "rlcc"})
	if err != nil || edited.ShortName != "RLCC" {
		t.Fatalf("EditTeam = %+v, %v", edited, err)
	}

	list, err := svc.ListTeams(ctx, owner, "royal")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListTeams = %+v, %v", list, err)
	}

	deleted, err := svc.DeleteTeam(ctx, team.ID, owner)
	if err != nil || deleted.Name != "Royal Lions CC" {
		t.Fatalf("DeleteTeam = %+v, %v", deleted, err)
	}
	if _, err := svc.DeleteTeam(ctx, team.ID, owner); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("second DeleteTeam: %v", err)
	}
}

func TestTeamValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		in       TeamInput
		fragment string
	}{
		{"missing name", TeamInput{ShortName: "LIO"}, "`name` is required"},
		{"missing short name", TeamInput{Name: "Lions"}, "`shortName` is required"},
		{"short name too long", TeamInput{Name: "Lions", ShortName: "LIONS"}, "at most 4 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTeam(ctx, owner, tc.in)
			wantIssue(t, err, tc.fragment)
		})
	}

	if _, err := svc.EditTeam(ctx, "absent", owner, TeamInput{Name: "Lions", ShortName: "LIO"}); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("EditTeam unknown id: %v", err)
	}
}

func TestUmpireLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUmpire(ctx, owner, "ravi kumar")
	if err != nil {
		t.Fatalf("CreateUmpire: %v", err)
	}
	if u.Name != "Ravi Kumar" {
		t.Fatalf("name = %q, want title case", u.Name)
	}

	if _, err := svc.CreateUmpire(ctx, owner, "  "); httperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("CreateUmpire blank name: %v", err)
	}

	edited, err := svc.EditUmpire(ctx, u.ID, owner, "Ravi K")
	if err != nil || edited.Name != "Ravi K" {
		t.Fatalf("EditUmpire = %+v, %v", edited, err)
	}
	if _, err := svc.EditUmpire(ctx, "absent", owner, "Ravi"); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("EditUmpire unknown id: %v", err)
	}

	list, err := svc.ListUmpires(ctx, owner)
	if err != nil || len(list) != 1 || list[0].Name != "Ravi K" {
		t.Fatalf("ListUmpires = %+v, %v", list, err)
	}

	deleted, err := svc.DeleteUmpire(ctx, u.ID, owner)
	if err != nil || deleted.Name != "Ravi K" {
		t.Fatalf("DeleteUmpire = %+v, %v", deleted, err)
	}
	if _, err := svc.DeleteUmpire(ctx, u.ID, "someone-else"); httperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("foreign DeleteUmpire: %v", err)
	}
}

type failingPlayerStore struct {
	*store.Memory
	err error
}

func (f *failingPlayerStore) PlayerNameExists(context.Context, string, string, string) (bool, error) {
	return false, f.err
}

func TestCreatePlayerStoreFailure(t *testing.T) {
	mem := store.NewMemory()
	broken := &failingPlayerStore{Memory: mem, err: errors.New("connection reset")}
	svc := NewService(broken, mem, mem, nil)

	_, err := svc.CreatePlayer(context.Background(), owner, PlayerInput{Name: "asha rao", JerseyNo: 7})
	if !errors.Is(err, broken.err) {
		t.Fatalf("CreatePlayer = %v, want store error", err)
	}
	if got := httperr.StatusOf(err); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf = %d, want %d", got, http.StatusInternalServerError)
	}
}
