// Package matches provides CRUD over the match aggregate: creation with
// cross-entity validation, listing with search, tag aggregation, editing
// and deletion. Scoring mutations live in the scoring package.
package matches

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/store"
	"cricket-scoring-service/internal/textutil"
)

// Service coordinates match CRUD using the persistence layer.
type Service struct {
	matches store.MatchStore
	teams   store.TeamStore
	umpires store.UmpireStore
	logger  *slog.Logger
}

// NewService constructs a matches Service.
func NewService(matches store.MatchStore, teams store.TeamStore, umpires store.UmpireStore, logger *slog.Logger) *Service {
	return &Service{matches: matches, teams: teams, umpires: umpires, logger: logger}
}

// Input carries the static fields fixed at creation (or rewritten by an
// edit). Umpires holds 0-3 umpire IDs.
type Input struct {
	Name    string   `json:"name"`
	Team1   string   `json:"team1"`
	Team2   string   `json:"team2"`
	Umpires []string `json:"umpires"`
	Overs   int      `json:"overs"`
	Tags    []string `json:"tags"`
}

// Create validates and stores a new match in the unstarted state.
func (s *Service) Create(ctx context.Context, owner string, in Input) (match.Match, error) {
	in.Name = textutil.TitleCase(in.Name)
	issues, err := s.validate(ctx, owner, in, "")
	if err != nil {
		return match.Match{}, err
	}
	if len(issues) > 0 {
		return match.Match{}, httperr.NewValidation(issues...)
	}

	m := match.Match{
		ID:      uuid.NewString(),
		Creator: owner,
		Name:    in.Name,
		Team1:   in.Team1,
		Team2:   in.Team2,
		Umpires: in.Umpires,
		Overs:   in.Overs,
		Tags:    in.Tags,
		State:   match.StateUnstarted,
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if err := s.matches.InsertMatch(ctx, m); err != nil {
		return match.Match{}, err
	}

	logging.Info(s.logger, "match created", slog.String("match_id", m.ID), slog.String("name", m.Name))
	return m, nil
}

// Edit rewrites the static fields of an existing match.
func (s *Service) Edit(ctx context.Context, id, owner string, in Input) (match.Match, error) {
	in.Name = textutil.TitleCase(in.Name)
	issues, err := s.validate(ctx, owner, in, id)
	if err != nil {
		return match.Match{}, err
	}
	if len(issues) > 0 {
		return match.Match{}, httperr.NewValidation(issues...)
	}

	m, ok, err := s.matches.FindMatch(ctx, id, owner)
	if err != nil {
		return match.Match{}, err
	}
	if !ok {
		return match.Match{}, httperr.NewNotFound("Match could not found")
	}

	m.Name = in.Name
	m.Team1 = in.Team1
	m.Team2 = in.Team2
	m.Umpires = in.Umpires
	m.Overs = in.Overs
	m.Tags = in.Tags
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if err := s.matches.ReplaceMatch(ctx, m); err != nil {
		return match.Match{}, err
	}

	logging.Info(s.logger, "match edited", slog.String("match_id", id))
	return m, nil
}

// Get returns a single match by ID.
func (s *Service) Get(ctx context.Context, id, owner string) (match.Match, error) {
	m, ok, err := s.matches.FindMatch(ctx, id, owner)
	if err != nil {
		return match.Match{}, err
	}
	if !ok {
		return match.Match{}, httperr.NewNotFound("Match could not found")
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m, nil
}

// List returns the owner's active matches, optionally filtered by a
// search over name and tags, optionally without innings payloads.
func (s *Service) List(ctx context.Context, owner, search string, compact bool) ([]match.Match, error) {
	return s.matches.ListMatches(ctx, owner, store.MatchFilter{Search: search, Compact: compact})
}

// ListDone returns the owner's completed matches.
func (s *Service) ListDone(ctx context.Context, owner, search string) ([]match.Match, error) {
	return s.matches.ListMatches(ctx, owner, store.MatchFilter{Done: true, Search: search})
}

// Tags returns the distinct tags across all of the owner's matches.
func (s *Service) Tags(ctx context.Context, owner string) ([]string, error) {
	return s.matches.MatchTags(ctx, owner)
}

// Delete removes a match unconditionally and returns its name.
func (s *Service) Delete(ctx context.Context, id, owner string) (string, error) {
	m, ok, err := s.matches.DeleteMatch(ctx, id, owner)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", httperr.NewNotFound("Match could not found")
	}
	logging.Info(s.logger, "match deleted", slog.String("match_id", id))
	return m.Name, nil
}
