package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cricket-scoring-service/internal/domain/match"
	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
)

// UpdateMode selects how an edit combines with the existing delivery.
type UpdateMode int

const (
	// ModeReplace rebuilds the delivery from the payload; only the striker
	// carries over when the payload omits one.
	ModeReplace UpdateMode = iota
	// ModeMerge lays the payload's present fields over the existing
	// delivery, so a by run or a run out composes with prior scoring.
	ModeMerge
)

// UpdateResult is the mutation outcome: the resulting delivery plus its
// resolved position, so a caller can render state without re-fetching.
type UpdateResult struct {
	Innings   match.State    `json:"innings"`
	OverIndex int            `json:"overIndex"`
	BowlIndex int            `json:"bowlIndex"`
	Bowl      match.Delivery `json:"bowl"`
}

// UpdateDelivery edits the delivery addressed by the payload's
// overNo/bowlNo pair, defaulting to the last delivery of the last over.
// The scoring rules are re-checked against the effective (post-merge or
// post-replace) delivery before anything is written.
func (s *Service) UpdateDelivery(ctx context.Context, matchID, owner string, p match.DeliveryPayload, mode UpdateMode) (UpdateResult, error) {
	start := time.Now()
	res, err := s.updateDelivery(ctx, matchID, owner, p, mode, nil)
	s.metrics.RecordScoringOp("bowl", time.Since(start), err)
	return res, err
}

// preCheck lets convenience endpoints veto a mutation after the target
// delivery has been resolved but before the write.
type preCheck func(prev match.Delivery) error

func (s *Service) updateDelivery(ctx context.Context, matchID, owner string, p match.DeliveryPayload, mode UpdateMode, check preCheck) (UpdateResult, error) {
	if issues := match.ValidateAddressing(p); len(issues) > 0 {
		return UpdateResult{}, httperr.NewValidation(issues...)
	}

	m, ok, err := s.matches.FindMatch(ctx, matchID, owner)
	if err != nil {
		return UpdateResult{}, err
	}
	if !ok {
		return UpdateResult{}, httperr.NewNotFound(matchNotFoundMsg)
	}
	if !m.State.IsInnings() {
		return UpdateResult{}, httperr.NewValidationMsg("State should be either innings 1 or innings 2")
	}

	innings := match.CurrentInnings(&m)
	target, issues := match.ResolveTarget(innings, p.OverNo, p.BowlNo)
	if len(issues) > 0 {
		return UpdateResult{}, httperr.NewValidation(issues...)
	}

	prev := innings.Overs[target.OverIndex].Bowls[target.BowlIndex]
	if check != nil {
		if err := check(prev); err != nil {
			return UpdateResult{}, err
		}
	}

	var next match.Delivery
	if mode == ModeMerge {
		next = p.Apply(prev)
	} else {
		next = p.Replace(prev)
	}
	if issues := match.ValidateDelivery(next, p); len(issues) > 0 {
		return UpdateResult{}, httperr.NewValidation(issues...)
	}

	if err := s.matches.SetDelivery(ctx, matchID, m.State, target.OverIndex, target.BowlIndex, next); err != nil {
		return UpdateResult{}, err
	}

	logging.Info(s.logger, "delivery updated",
		slog.String("match_id", matchID),
		slog.String("innings", string(m.State)),
		slog.Int("over_index", target.OverIndex),
		slog.Int("bowl_index", target.BowlIndex),
	)
	return UpdateResult{
		Innings:   m.State,
		OverIndex: target.OverIndex,
		BowlIndex: target.BowlIndex,
		Bowl:      next,
	}, nil
}

// ByRunInput appends a by run to an already-recorded delivery, as a plain
// run or as a by boundary.
type ByRunInput struct {
	Run      int  `json:"run"`
	Boundary bool `json:"boundary"`
	OverNo   *int `json:"overNo,omitempty"`
	BowlNo   *int `json:"bowlNo,omitempty"`
}

// AddByRun merges a by run onto the addressed delivery, preserving the
// scoring already recorded on it.
func (s *Service) AddByRun(ctx context.Context, matchID, owner string, in ByRunInput) (UpdateResult, error) {
	start := time.Now()
	res, err := s.addByRun(ctx, matchID, owner, in)
	s.metrics.RecordScoringOp("by", time.Since(start), err)
	return res, err
}

func (s *Service) addByRun(ctx context.Context, matchID, owner string, in ByRunInput) (UpdateResult, error) {
	if in.Boundary && in.Run != 4 && in.Run != 6 {
		return UpdateResult{}, httperr.NewValidation(match.Issue{
			Param: "run",
			Value: in.Run,
			Msg:   "Boundary run can either be 4 or 6",
		})
	}

	p := match.DeliveryPayload{OverNo: in.OverNo, BowlNo: in.BowlNo}
	if in.Boundary {
		p.Boundary = &match.Boundary{Run: in.Run, Kind: match.BoundaryBy}
	} else {
		run := in.Run
		p.By = &run
	}
	return s.updateDelivery(ctx, matchID, owner, p, ModeMerge, nil)
}

// UncertainOutInput attaches a run out or obstruction dismissal to an
// already-recorded delivery. Batsman is the dismissed batter's roster
// index, which need not be the striker.
type UncertainOutInput struct {
	Batsman match.RosterIndex `json:"batsman"`
	Kind    string            `json:"kind"`
	OverNo  *int              `json:"overNo,omitempty"`
	BowlNo  *int              `json:"bowlNo,omitempty"`
}

// AddUncertainOut merges an uncertain wicket onto the addressed delivery.
// A delivery already carrying a wicket is rejected rather than silently
// overwritten.
func (s *Service) AddUncertainOut(ctx context.Context, matchID, owner string, in UncertainOutInput) (UpdateResult, error) {
	start := time.Now()
	res, err := s.addUncertainOut(ctx, matchID, owner, in)
	s.metrics.RecordScoringOp("uncertain-out", time.Since(start), err)
	return res, err
}

func (s *Service) addUncertainOut(ctx context.Context, matchID, owner string, in UncertainOutInput) (UpdateResult, error) {
	var issues []match.Issue
	if in.Batsman < 0 {
		issues = append(issues, match.Issue{
			Param: "batsman",
			Value: int(in.Batsman),
			Msg:   "`batsman` must be a non-negative integer",
		})
	}
	if in.Kind != match.KindRunOut && in.Kind != match.KindObstructingField {
		issues = append(issues, match.Issue{
			Param: "kind",
			Value: in.Kind,
			Msg:   "`kind` should be either run out or obstructing the field",
		})
	}
	if len(issues) > 0 {
		return UpdateResult{}, httperr.NewValidation(issues...)
	}

	batsman := in.Batsman
	p := match.DeliveryPayload{
		Wicket: &match.Wicket{Kind: in.Kind, Player: &batsman},
		OverNo: in.OverNo,
		BowlNo: in.BowlNo,
	}
	return s.updateDelivery(ctx, matchID, owner, p, ModeMerge, func(prev match.Delivery) error {
		if prev.HasWicket() {
			return httperr.NewValidationMsg(fmt.Sprintf(
				"Already a %s in this bowl. To input a bowl with only a run out or obstructing the field, input a bowl with 0 run first.",
				prev.Wicket.Kind,
			))
		}
		return nil
	})
}
