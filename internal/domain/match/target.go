package match

import "fmt"

// Target is a resolved (over, delivery) position inside an innings.
type Target struct {
	OverIndex int
	BowlIndex int
}

// ResolveTarget locates the delivery addressed by overNo/bowlNo inside an
// innings, defaulting to the last delivery of the last over when both are
// nil. It is a pure lookup: the subsequent write is a separate step, so two
// concurrent scorers can still race between resolution and write, and the
// last write wins.
func ResolveTarget(innings *Innings, overNo, bowlNo *int) (Target, []Issue) {
	if (overNo == nil) != (bowlNo == nil) {
		param := "bowlNo"
		if bowlNo != nil {
			param = "overNo"
		}
		return Target{}, []Issue{{
			Param: param,
			Msg:   "Must provide either both `overNo` and `bowlNo` or none",
		}}
	}

	overIndex := len(innings.Overs) - 1
	if overNo != nil {
		overIndex = *overNo
	}
	if overIndex < 0 || overIndex >= len(innings.Overs) {
		bowlIndex := -1
		if bowlNo != nil {
			bowlIndex = *bowlNo
		}
		return Target{}, []Issue{noBowlIssue(overIndex, bowlIndex)}
	}

	bowls := innings.Overs[overIndex].Bowls
	bowlIndex := len(bowls) - 1
	if bowlNo != nil {
		bowlIndex = *bowlNo
	}
	if bowlIndex < 0 || bowlIndex >= len(bowls) {
		return Target{}, []Issue{noBowlIssue(overIndex, bowlIndex)}
	}

	return Target{OverIndex: overIndex, BowlIndex: bowlIndex}, nil
}

func noBowlIssue(overIndex, bowlIndex int) Issue {
	return Issue{
		Param: "bowlNo",
		Value: bowlIndex,
		Msg:   fmt.Sprintf("There is no bowl at over %d, bowl %d", overIndex, bowlIndex),
	}
}
