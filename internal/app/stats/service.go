// Package stats derives per-player career statistics from completed
// matches. It is a pure fold over the match aggregate: nothing here
// mutates state.
package stats

import (
	"context"
	"log/slog"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/store"
)

// Service computes player statistics over the owner's done matches.
type Service struct {
	matches store.MatchStore
	players store.PlayerStore
	logger  *slog.Logger
}

// NewService constructs a stats Service.
func NewService(matches store.MatchStore, players store.PlayerStore, logger *slog.Logger) *Service {
	return &Service{matches: matches, players: players, logger: logger}
}

// BattingStat is a player's aggregated batting career.
type BattingStat struct {
	NumInnings int      `json:"numInnings"`
	TotalRun   int      `json:"totalRun"`
	AvgRun     *float64 `json:"avgRun"`
	HighestRun int      `json:"highestRun"`
	StrikeRate float64  `json:"strikeRate"`
}

// BestFigure is a bowler's best single-innings return. More wickets beats
// fewer; on equal wickets, fewer runs conceded wins.
type BestFigure struct {
	Wicket int `json:"wicket"`
	Run    int `json:"run"`
}

// BowlingStat is a player's aggregated bowling career.
type BowlingStat struct {
	NumInnings   int        `json:"numInnings"`
	TotalWickets int        `json:"totalWickets"`
	AvgWicket    *float64   `json:"avgWicket"`
	BestFigure   BestFigure `json:"bestFigure"`
	StrikeRate   *float64   `json:"strikeRate"`
}

// Summary is the full stat payload for one player.
type Summary struct {
	NumMatch int             `json:"numMatch"`
	Bat      BattingStat     `json:"bat"`
	Bowl     BowlingStat     `json:"bowl"`
	Player   entities.Player `json:"player"`
}

// contribution is one match viewed from the player's side: which innings
// they batted and bowled in, and their position in their own roster.
type contribution struct {
	batting     *match.Innings
	bowling     *match.Innings
	playerIndex match.RosterIndex
}

// PlayerStats aggregates batting and bowling figures for the player across
// every done match of the owner whose roster contains them.
func (s *Service) PlayerStats(ctx context.Context, playerID, owner string) (Summary, error) {
	player, ok, err := s.players.FindPlayer(ctx, playerID, owner)
	if err != nil {
		return Summary{}, err
	}
	if !ok {
		return Summary{}, httperr.NewNotFound("Player could not found")
	}

	matches, err := s.matches.DoneMatchesWithPlayer(ctx, owner, playerID)
	if err != nil {
		return Summary{}, err
	}

	contributions := make([]contribution, 0, len(matches))
	for _, m := range matches {
		c, ok := contributionOf(m, playerID)
		if !ok {
			continue
		}
		contributions = append(contributions, c)
	}

	bat := battingCareer(contributions)
	bowl := bowlingCareer(contributions)

	logging.Info(s.logger, "player stats computed",
		slog.String("player_id", playerID),
		slog.Int("matches", len(contributions)),
	)
	return Summary{
		NumMatch: len(contributions),
		Bat:      bat,
		Bowl:     bowl,
		Player:   player,
	}, nil
}

// contributionOf determines which innings the player batted and bowled in,
// from their roster membership and who batted first.
func contributionOf(m match.Match, playerID string) (contribution, bool) {
	if idx := indexOf(m.Team1Players, playerID); idx != -1 {
		batting, bowling := m.Innings1, m.Innings2
		if !m.Team1BatFirst {
			batting, bowling = m.Innings2, m.Innings1
		}
		return contribution{batting: batting, bowling: bowling, playerIndex: match.RosterIndex(idx)}, true
	}
	if idx := indexOf(m.Team2Players, playerID); idx != -1 {
		batting, bowling := m.Innings2, m.Innings1
		if !m.Team1BatFirst {
			batting, bowling = m.Innings1, m.Innings2
		}
		return contribution{batting: batting, bowling: bowling, playerIndex: match.RosterIndex(idx)}, true
	}
	return contribution{}, false
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
