package matches

import (
	"context"
	"fmt"
	"strings"

	"cricket-scoring-service/internal/domain/match"
)

const maxUmpires = 3

// validate checks creation and edit input. excludeID is the match being
// edited, empty on create; its own name does not count as a duplicate.
// A store failure aborts validation rather than admitting a duplicate.
func (s *Service) validate(ctx context.Context, owner string, in Input, excludeID string) ([]match.Issue, error) {
	var issues []match.Issue

	if strings.TrimSpace(in.Name) == "" {
		issues = append(issues, match.Issue{Param: "name", Msg: "`name` is required"})
	} else {
		taken, err := s.matches.MatchNameExists(ctx, owner, in.Name, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			issues = append(issues, match.Issue{
				Param: "name",
				Value: in.Name,
				Msg:   fmt.Sprintf("Match with name %s already exists", in.Name),
			})
		}
	}

	teamIssues, err := s.validateTeam(ctx, owner, "team1", in.Team1)
	if err != nil {
		return nil, err
	}
	issues = append(issues, teamIssues...)
	teamIssues, err = s.validateTeam(ctx, owner, "team2", in.Team2)
	if err != nil {
		return nil, err
	}
	issues = append(issues, teamIssues...)
	if in.Team1 != "" && in.Team1 == in.Team2 {
		issues = append(issues, match.Issue{
			Param: "team2",
			Value: in.Team2,
			Msg:   "Team 1 and Team 2 should be different team",
		})
	}

	if len(in.Umpires) > maxUmpires {
		issues = append(issues, match.Issue{
			Param: "umpires",
			Msg:   fmt.Sprintf("A match can have at most %d umpires", maxUmpires),
		})
	}
	seen := make(map[string]struct{}, len(in.Umpires))
	for _, id := range in.Umpires {
		if _, dup := seen[id]; dup {
			issues = append(issues, match.Issue{
				Param: "umpires",
				Value: id,
				Msg:   "Umpires should be distinct",
			})
			continue
		}
		seen[id] = struct{}{}
		ok, err := s.umpires.UmpireExists(ctx, id, owner)
		if err != nil {
			return nil, err
		}
		if !ok {
			issues = append(issues, match.Issue{
				Param: "umpires",
				Value: id,
				Msg:   fmt.Sprintf("Umpire %s don't exists", id),
			})
		}
	}

	if in.Overs < 1 {
		issues = append(issues, match.Issue{
			Param: "overs",
			Value: in.Overs,
			Msg:   "`overs` must be at least 1",
		})
	}
	return issues, nil
}

func (s *Service) validateTeam(ctx context.Context, owner, param, id string) ([]match.Issue, error) {
	if id == "" {
		return []match.Issue{{Param: param, Msg: fmt.Sprintf("`%s` is required", param)}}, nil
	}
	ok, err := s.teams.TeamExists(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []match.Issue{{Param: param, Value: id, Msg: fmt.Sprintf("Team %s don't exists", id)}}, nil
	}
	return nil, nil
}
