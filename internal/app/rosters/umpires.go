package rosters

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/textutil"
)

// CreateUmpire validates and stores a new umpire.
func (s *Service) CreateUmpire(ctx context.Context, owner, name string) (entities.Umpire, error) {
	name = textutil.TitleCase(name)
	if strings.TrimSpace(name) == "" {
		return entities.Umpire{}, httperr.NewValidation(match.Issue{Param: "name", Msg: "`name` is required"})
	}
	u := entities.Umpire{ID: uuid.NewString(), Creator: owner, Name: name}
	if err := s.umpires.InsertUmpire(ctx, u); err != nil {
		return entities.Umpire{}, err
	}
	logging.Info(s.logger, "umpire created", slog.String("umpire_id", u.ID))
	return u, nil
}

// EditUmpire renames an umpire.
func (s *Service) EditUmpire(ctx context.Context, id, owner, name string) (entities.Umpire, error) {
	name = textutil.TitleCase(name)
	if strings.TrimSpace(name) == "" {
		return entities.Umpire{}, httperr.NewValidation(match.Issue{Param: "name", Msg: "`name` is required"})
	}
	u := entities.Umpire{ID: id, Creator: owner, Name: name}
	ok, err := s.umpires.UpdateUmpire(ctx, u)
	if err != nil {
		return entities.Umpire{}, err
	}
	if !ok {
		return entities.Umpire{}, httperr.NewNotFound("Umpire could not found")
	}
	return u, nil
}

// ListUmpires returns the owner's umpires.
func (s *Service) ListUmpires(ctx context.Context, owner string) ([]entities.Umpire, error) {
	return s.umpires.ListUmpires(ctx, owner)
}

// DeleteUmpire removes an umpire and returns it.
func (s *Service) DeleteUmpire(ctx context.Context, id, owner string) (entities.Umpire, error) {
	u, ok, err := s.umpires.DeleteUmpire(ctx, id, owner)
	if err != nil {
		return entities.Umpire{}, err
	}
	if !ok {
		return entities.Umpire{}, httperr.NewNotFound("Umpire could not found")
	}
	logging.Info(s.logger, "umpire deleted", slog.String("umpire_id", id))
	return u, nil
}
