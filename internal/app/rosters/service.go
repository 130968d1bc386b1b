// Package rosters manages the entities matches are composed from:
// players, teams, and umpires. All operations are owner-scoped.
package rosters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/store"
	"cricket-scoring-service/internal/textutil"
)

const (
	minJerseyNo = 0
	maxJerseyNo = 999
)

// Service coordinates player, team and umpire CRUD.
type Service struct {
	players store.PlayerStore
	teams   store.TeamStore
	umpires store.UmpireStore
	logger  *slog.Logger
}

// NewService constructs a rosters Service.
func NewService(players store.PlayerStore, teams store.TeamStore, umpires store.UmpireStore, logger *slog.Logger) *Service {
	return &Service{players: players, teams: teams, umpires: umpires, logger: logger}
}

// PlayerInput carries player creation and edit fields.
type PlayerInput struct {
	Name     string `json:"name"`
	JerseyNo int    `json:"jerseyNo"`
}

// CreatePlayer validates and stores a new player.
func (s *Service) CreatePlayer(ctx context.Context, owner string, in PlayerInput) (entities.Player, error) {
	in.Name = textutil.TitleCase(in.Name)
	issues, err := s.validatePlayer(ctx, owner, in, "")
	if err != nil {
		return entities.Player{}, err
	}
	if len(issues) > 0 {
		return entities.Player{}, httperr.NewValidation(issues...)
	}
	p := entities.Player{
		ID:       uuid.NewString(),
		Creator:  owner,
		Name:     in.Name,
		JerseyNo: in.JerseyNo,
	}
	if err := s.players.InsertPlayer(ctx, p); err != nil {
		return entities.Player{}, err
	}
	logging.Info(s.logger, "player created", slog.String("player_id", p.ID))
	return p, nil
}

// EditPlayer rewrites a player's fields.
func (s *Service) EditPlayer(ctx context.Context, id, owner string, in PlayerInput) (entities.Player, error) {
	in.Name = textutil.TitleCase(in.Name)
	issues, err := s.validatePlayer(ctx, owner, in, id)
	if err != nil {
		return entities.Player{}, err
	}
	if len(issues) > 0 {
		return entities.Player{}, httperr.NewValidation(issues...)
	}
	p := entities.Player{ID: id, Creator: owner, Name: in.Name, JerseyNo: in.JerseyNo}
	ok, err := s.players.UpdatePlayer(ctx, p)
	if err != nil {
		return entities.Player{}, err
	}
	if !ok {
		return entities.Player{}, httperr.NewNotFound("Player could not found")
	}
	return p, nil
}

// GetPlayer returns a single player by ID.
func (s *Service) GetPlayer(ctx context.Context, id, owner string) (entities.Player, error) {
	p, ok, err := s.players.FindPlayer(ctx, id, owner)
	if err != nil {
		return entities.Player{}, err
	}
	if !ok {
		return entities.Player{}, httperr.NewNotFound("Player could not found")
	}
	return p, nil
}

// ListPlayers returns the owner's active players, optionally filtered
// by a case-insensitive name search.
func (s *Service) ListPlayers(ctx context.Context, owner, search string) ([]entities.Player, error) {
	return s.players.ListPlayers(ctx, owner, search)
}

// DeletePlayer soft-deletes a player so past match rosters keep
// resolving, and returns the deleted player.
func (s *Service) DeletePlayer(ctx context.Context, id, owner string) (entities.Player, error) {
	p, ok, err := s.players.SoftDeletePlayer(ctx, id, owner)
	if err != nil {
		return entities.Player{}, err
	}
	if !ok {
		return entities.Player{}, httperr.NewNotFound("Player could not found")
	}
	logging.Info(s.logger, "player deleted", slog.String("player_id", id))
	return p, nil
}

// validatePlayer checks player input. A store failure aborts validation
// rather than admitting a duplicate.
func (s *Service) validatePlayer(ctx context.Context, owner string, in PlayerInput, excludeID string) ([]match.Issue, error) {
	var issues []match.Issue
	if strings.TrimSpace(in.Name) == "" {
		issues = append(issues, match.Issue{Param: "name", Msg: "`name` is required"})
	} else {
		taken, err := s.players.PlayerNameExists(ctx, owner, in.Name, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			issues = append(issues, match.Issue{
				Param: "name",
				Value: in.Name,
				Msg:   fmt.Sprintf("Player with name %s already exists", in.Name),
			})
		}
	}
	if in.JerseyNo < minJerseyNo || in.JerseyNo > maxJerseyNo {
		issues = append(issues, match.Issue{
			Param: "jerseyNo",
			Value: in.JerseyNo,
			Msg:   fmt.Sprintf("`jerseyNo` must be between %d and %d", minJerseyNo, maxJerseyNo),
		})
	} else {
		taken, err := s.players.PlayerJerseyExists(ctx, owner, in.JerseyNo, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			issues = append(issues, match.Issue{
				Param: "jerseyNo",
				Value: in.JerseyNo,
				Msg:   fmt.Sprintf("Player with jersey no %d already exists", in.JerseyNo),
			})
		}
	}
	return issues, nil
}
