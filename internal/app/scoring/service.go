// Package scoring implements the match lifecycle state machine
// (begin -> toss -> innings1 -> innings2 -> done) and the ball-by-ball
// delivery mutations. Everything here is owner-scoped: a match that is
// missing or belongs to someone else is uniformly "not found".
package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/metrics"
	"cricket-scoring-service/internal/store"
)

const matchNotFoundMsg = "Match could not found"

// Service runs scoring operations against the persistence layer. Each
// operation is a read followed by a single atomic write; there is no
// optimistic-concurrency check, so concurrent edits of the same delivery
// are last-write-wins.
type Service struct {
	matches store.MatchStore
	players store.PlayerStore
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a scoring Service.
func NewService(matches store.MatchStore, players store.PlayerStore, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{matches: matches, players: players, logger: logger, metrics: rec}
}

// BeginInput freezes the rosters for a match. Players and captains are
// referenced by their persistent IDs here; from this point on, deliveries
// address batters by position inside these snapshots.
type BeginInput struct {
	Team1Players []string `json:"team1Players"`
	Team2Players []string `json:"team2Players"`
	Team1Captain string   `json:"team1Captain"`
	Team2Captain string   `json:"team2Captain"`
}

// BeginResult echoes the stored roster fields.
type BeginResult struct {
	Team1Players []string    `json:"team1Players"`
	Team2Players []string    `json:"team2Players"`
	Team1Captain string      `json:"team1Captain"`
	Team2Captain string      `json:"team2Captain"`
	State        match.State `json:"state"`
}

// Begin stores the rosters and captains and moves the match to the toss
// state.
func (s *Service) Begin(ctx context.Context, matchID, owner string, in BeginInput) (BeginResult, error) {
	start := time.Now()
	res, err := s.begin(ctx, matchID, owner, in)
	s.metrics.RecordScoringOp("begin", time.Since(start), err)
	return res, err
}

func (s *Service) begin(ctx context.Context, matchID, owner string, in BeginInput) (BeginResult, error) {
	issues, err := s.validateBegin(ctx, owner, in)
	if err != nil {
		return BeginResult{}, err
	}
	if len(issues) > 0 {
		return BeginResult{}, httperr.NewValidation(issues...)
	}

	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return BeginResult{}, err
	}
	if !ok {
		return BeginResult{}, httperr.NewNotFound(matchNotFoundMsg)
	}

	m.Team1Players = in.Team1Players
	m.Team2Players = in.Team2Players
	m.Team1Captain = in.Team1Captain
	m.Team2Captain = in.Team2Captain
	m.State = match.StateToss
	if err := s.matches.ReplaceMatch(ctx, m); err != nil {
		return BeginResult{}, err
	}

	logging.Info(s.logger, "match begun",
		slog.String("match_id", matchID),
		slog.Int("team1_players", len(in.Team1Players)),
		slog.Int("team2_players", len(in.Team2Players)),
	)
	return BeginResult{
		Team1Players: m.Team1Players,
		Team2Players: m.Team2Players,
		Team1Captain: m.Team1Captain,
		Team2Captain: m.Team2Captain,
		State:        match.StateToss,
	}, nil
}

func (s *Service) validateBegin(ctx context.Context, owner string, in BeginInput) ([]match.Issue, error) {
	var issues []match.Issue
	rosterIssues, err := s.validateRoster(ctx, owner, "team1Players", in.Team1Players, "team1Captain", in.Team1Captain)
	if err != nil {
		return nil, err
	}
	issues = append(issues, rosterIssues...)
	rosterIssues, err = s.validateRoster(ctx, owner, "team2Players", in.Team2Players, "team2Captain", in.Team2Captain)
	if err != nil {
		return nil, err
	}
	issues = append(issues, rosterIssues...)
	return issues, nil
}

// validateRoster checks one team's roster input. A store failure aborts
// validation instead of reporting the player as missing.
func (s *Service) validateRoster(ctx context.Context, owner, playersParam string, players []string, captainParam, captain string) ([]match.Issue, error) {
	var issues []match.Issue
	if players == nil {
		issues = append(issues, match.Issue{
			Param: playersParam,
			Msg:   fmt.Sprintf("`%s` is required", playersParam),
		})
	}

	var missing []string
	for _, id := range players {
		exists, err := s.players.PlayerExists(ctx, id, owner)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, match.Issue{
			Param: playersParam,
			Msg:   fmt.Sprintf("%s don't exists", strings.Join(missing, ", ")),
		})
	}

	if captain == "" {
		issues = append(issues, match.Issue{Param: captainParam, Msg: "No captain selected"})
	}
	if len(players) < 2 {
		issues = append(issues, match.Issue{Param: captainParam, Msg: "Must have at least two players"})
	}
	if captain != "" && !contains(players, captain) {
		issues = append(issues, match.Issue{Param: captainParam, Msg: "Captain should be a player from same team"})
	}
	return issues, nil
}

// TossInput records the coin flip: the winning team's ID and whether it
// chose to bat or bowl.
type TossInput struct {
	Won    string `json:"won"`
	Choice string `json:"choice"`
}

const (
	ChoiceBat  = "Bat"
	ChoiceBowl = "Bowl"
)

// TossResult echoes the derived toss fields.
type TossResult struct {
	Team1WonToss  bool           `json:"team1WonToss"`
	Team1BatFirst bool           `json:"team1BatFirst"`
	State         match.State    `json:"state"`
	Innings1      *match.Innings `json:"innings1"`
}

// Toss decides the batting order and opens innings1. A match that is not
// sitting in the toss state is reported as not found, so a second toss
// cannot rewrite the first.
func (s *Service) Toss(ctx context.Context, matchID, owner string, in TossInput) (TossResult, error) {
	start := time.Now()
	res, err := s.toss(ctx, matchID, owner, in)
	s.metrics.RecordScoringOp("toss", time.Since(start), err)
	return res, err
}

func (s *Service) toss(ctx context.Context, matchID, owner string, in TossInput) (TossResult, error) {
	if in.Choice != ChoiceBat && in.Choice != ChoiceBowl {
		return TossResult{}, httperr.NewValidation(match.Issue{
			Param: "choice",
			Value: in.Choice,
			Msg:   "Choice should be either Bat or Bowl",
		})
	}

	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return TossResult{}, err
	}
	if !ok || m.State != match.StateToss {
		return TossResult{}, httperr.NewNotFound(matchNotFoundMsg)
	}

	if in.Won != m.Team1 && in.Won != m.Team2 {
		return TossResult{}, httperr.NewValidation(match.Issue{
			Param: "won",
			Value: in.Won,
			Msg:   "Select a team",
		})
	}

	m.Team1WonToss = m.Team1 == in.Won
	m.Team1BatFirst = (m.Team1WonToss && in.Choice == ChoiceBat) || (!m.Team1WonToss && in.Choice == ChoiceBowl)
	m.State = match.StateInnings1
	m.Innings1 = &match.Innings{Overs: []match.Over{}}
	if err := s.matches.ReplaceMatch(ctx, m); err != nil {
		return TossResult{}, err
	}

	logging.Info(s.logger, "toss recorded",
		slog.String("match_id", matchID),
		slog.Bool("team1_won_toss", m.Team1WonToss),
		slog.Bool("team1_bat_first", m.Team1BatFirst),
	)
	return TossResult{
		Team1WonToss:  m.Team1WonToss,
		Team1BatFirst: m.Team1BatFirst,
		State:         match.StateInnings1,
		Innings1:      m.Innings1,
	}, nil
}

// AddOver appends a fresh over, bowled by the given bowling-side roster
// index, to the current innings.
func (s *Service) AddOver(ctx context.Context, matchID, owner string, bowledBy match.RosterIndex) error {
	start := time.Now()
	err := s.addOver(ctx, matchID, owner, bowledBy)
	s.metrics.RecordScoringOp("over", time.Since(start), err)
	return err
}

func (s *Service) addOver(ctx context.Context, matchID, owner string, bowledBy match.RosterIndex) error {
	if bowledBy < 0 {
		return httperr.NewValidation(match.Issue{
			Param: "bowledBy",
			Value: int(bowledBy),
			Msg:   "`bowledBy` is required and should be an integer",
		})
	}

	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.NewNotFound(matchNotFoundMsg)
	}
	if !m.State.IsInnings() {
		return httperr.NewValidationMsg(fmt.Sprintf("Can't add over in state %s", stateLabel(m.State)))
	}

	over := match.Over{BowledBy: bowledBy, Bowls: []match.Delivery{}}
	if err := s.matches.PushOver(ctx, matchID, m.State, over); err != nil {
		return err
	}

	logging.Info(s.logger, "over added",
		slog.String("match_id", matchID),
		slog.String("innings", string(m.State)),
		slog.Int("bowled_by", int(bowledBy)),
	)
	return nil
}

// AddDelivery validates and appends a delivery to the last over of the
// current innings, returning the new delivery's ID.
func (s *Service) AddDelivery(ctx context.Context, matchID, owner string, p match.DeliveryPayload) (string, error) {
	start := time.Now()
	id, err := s.addDelivery(ctx, matchID, owner, p)
	s.metrics.RecordScoringOp("bowl", time.Since(start), err)
	return id, err
}

func (s *Service) addDelivery(ctx context.Context, matchID, owner string, p match.DeliveryPayload) (string, error) {
	if issues := match.ValidateCreate(p); len(issues) > 0 {
		return "", httperr.NewValidation(issues...)
	}

	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", httperr.NewNotFound(matchNotFoundMsg)
	}
	if !m.State.IsInnings() {
		return "", httperr.NewValidationMsg(fmt.Sprintf("Cannot add bowl in state %s", stateLabel(m.State)))
	}

	innings := match.CurrentInnings(&m)
	overIndex := -1
	if innings != nil {
		overIndex = len(innings.Overs) - 1
	}
	if overIndex == -1 {
		return "", httperr.NewValidationMsg(fmt.Sprintf("Cannot add bowl before adding over to %s", m.State))
	}

	d := p.Delivery()
	d.ID = uuid.NewString()
	if err := s.matches.PushDelivery(ctx, matchID, m.State, overIndex, d); err != nil {
		return "", err
	}

	logging.Info(s.logger, "delivery added",
		slog.String("match_id", matchID),
		slog.String("innings", string(m.State)),
		slog.Int("over_index", overIndex),
	)
	return d.ID, nil
}

// DeclareResult reports the state reached and, when innings2 was opened,
// its fresh innings document.
type DeclareResult struct {
	State    match.State    `json:"state"`
	Innings2 *match.Innings `json:"innings2,omitempty"`
}

// Declare moves the match forward out of an innings: to innings2, to done,
// or (when nextState is empty) to whichever of the two follows naturally.
func (s *Service) Declare(ctx context.Context, matchID, owner string, nextState match.State) (DeclareResult, error) {
	start := time.Now()
	res, err := s.declare(ctx, matchID, owner, nextState)
	s.metrics.RecordScoringOp("declare", time.Since(start), err)
	return res, err
}

func (s *Service) declare(ctx context.Context, matchID, owner string, nextState match.State) (DeclareResult, error) {
	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return DeclareResult{}, err
	}
	if !ok {
		return DeclareResult{}, httperr.NewNotFound(matchNotFoundMsg)
	}

	if nextState != "" && nextState != match.StateDone && nextState != match.StateInnings2 {
		return DeclareResult{}, httperr.NewValidationMsg("Next state must be either 'done' or 'innings2'")
	}
	if !m.State.IsInnings() {
		return DeclareResult{}, httperr.NewValidationMsg("State must be either 'innings1' or 'innings2'")
	}

	result := DeclareResult{}
	switch {
	case nextState == match.StateInnings2:
		m.State = match.StateInnings2
		// keep an innings2 that a previous declare already created
		if m.Innings2 == nil {
			m.Innings2 = &match.Innings{Overs: []match.Over{}}
		}
		result.Innings2 = m.Innings2
	case nextState == match.StateDone:
		m.State = match.StateDone
	case m.State == match.StateInnings1:
		// legacy path without an explicit next state
		m.State = match.StateInnings2
		m.Innings2 = &match.Innings{Overs: []match.Over{}}
		result.Innings2 = m.Innings2
	default:
		m.State = match.StateDone
	}
	result.State = m.State

	if err := s.matches.ReplaceMatch(ctx, m); err != nil {
		return DeclareResult{}, err
	}

	logging.Info(s.logger, "innings declared",
		slog.String("match_id", matchID),
		slog.String("state", string(m.State)),
	)
	return result, nil
}

func stateLabel(s match.State) string {
	if s == match.StateUnstarted {
		return "unstarted"
	}
	return string(s)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
