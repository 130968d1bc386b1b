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

// TeamInput carries team creation and edit fields.
type TeamInput struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// CreateTeam validates and stores a new team.
func (s *Service) CreateTeam(ctx context.Context, owner string, in TeamInput) (entities.Team, error) {
	in.Name = textutil.TitleCase(in.Name)
	in.ShortName = strings.ToUpper(strings.TrimSpace(in.ShortName))
	if issues := validateTeamInput(in); len(issues) > 0 {
		return entities.Team{}, httperr.NewValidation(issues...)
	}
	t := entities.Team{
		ID:        uuid.NewString(),
		Creator:   owner,
		Name:      in.Name,
		ShortName: in.ShortName,
	}
	if err := s.teams.InsertTeam(ctx, t); err != nil {
		return entities.Team{}, err
	}
	logging.Info(s.logger, "team created", slog.String("team_id", t.ID))
	return t, nil
}

// EditTeam rewrites a team's fields.
func (s *Service) EditTeam(ctx context.Context, id, owner string, in TeamInput) (entities.Team, error) {
	in.Name = textutil.TitleCase(in.Name)
	in.ShortName = strings.ToUpper(strings.TrimSpace(in.ShortName))
	if issues := validateTeamInput(in); len(issues) > 0 {
		return entities.Team{}, httperr.NewValidation(issues...)
	}
	t := entities.Team{ID: id, Creator: owner, Name: in.Name, ShortName: in.ShortName}
	ok, err := s.teams.UpdateTeam(ctx, t)
	if err != nil {
		return entities.Team{}, err
	}
	if !ok {
		return entities.Team{}, httperr.NewNotFound("Team could not found")
	}
	return t, nil
}

// ListTeams returns the owner's teams, optionally filtered by a
// case-insensitive name search.
func (s *Service) ListTeams(ctx context.Context, owner, search string) ([]entities.Team, error) {
	return s.teams.ListTeams(ctx, owner, search)
}

// DeleteTeam removes a team and returns it.
func (s *Service) DeleteTeam(ctx context.Context, id, owner string) (entities.Team, error) {
	t, ok, err := s.teams.DeleteTeam(ctx, id, owner)
	if err != nil {
		return entities.Team{}, err
	}
	if !ok {
		return entities.Team{}, httperr.NewNotFound("Team could not found")
	}
	logging.Info(s.logger, "team deleted", slog.String("team_id", id))
	return t, nil
}

func validateTeamInput(in TeamInput) []match.Issue {
	var issues []match.Issue
	if strings.TrimSpace(in.Name) == "" {
		issues = append(issues, match.Issue{Param: "name", Msg: "`name` is required"})
	}
	if in.ShortName == "" {
		issues = append(issues, match.Issue{Param: "shortName", Msg: "`shortName` is required"})
	} else if len(in.ShortName) > 4 {
		issues = append(issues, match.Issue{
			Param: "shortName",
			Value: in.ShortName,
			Msg:   "`shortName` must be at most 4 characters",
		})
	}
	return issues
}
