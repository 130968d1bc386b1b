package stats

import "cricket-scoring-service/internal/domain/match"

// battingInnings is one innings' worth of the player's batting: runs
// scored off deliveries they faced, how many they faced, and whether they
// were dismissed at any point in the innings (possibly off a delivery they
// did not face, for run outs).
type battingInnings struct {
	run     int
	numBowl int
	out     bool
}

func battingCareer(contributions []contribution) BattingStat {
	innings := make([]battingInnings, 0, len(contributions))
	dismissals := 0
	for _, c := range contributions {
		if c.batting == nil {
			continue
		}
		in := battingInningsOf(c)
		if in.out {
			dismissals++
		}
		// an innings without a faced delivery does not count as batted
		if in.numBowl == 0 {
			continue
		}
		innings = append(innings, in)
	}

	stat := BattingStat{NumInnings: len(innings)}
	sumStrikeRate := 0.0
	for _, in := range innings {
		stat.TotalRun += in.run
		if in.run > stat.HighestRun {
			stat.HighestRun = in.run
		}
		sumStrikeRate += float64(in.run) / float64(in.numBowl)
	}
	if dismissals > 0 {
		avg := float64(stat.TotalRun) / float64(dismissals)
		stat.AvgRun = &avg
	}
	if len(innings) > 0 {
		stat.StrikeRate = sumStrikeRate / float64(len(innings)) * 100
	}
	return stat
}

func battingInningsOf(c contribution) battingInnings {
	var in battingInnings
	for _, over := range c.batting.Overs {
		for _, bowl := range over.Bowls {
			if bowl.HasWicket() && dismisses(bowl, c.playerIndex) {
				in.out = true
			}
			if bowl.PlayedBy == nil || *bowl.PlayedBy != c.playerIndex {
				continue
			}
			in.numBowl++
			in.run += bowl.Singles
			if bowl.Boundary != nil {
				in.run += bowl.Boundary.Run
			}
		}
	}
	return in
}

// dismisses reports whether the delivery's wicket is attributable to the
// player: an uncertain wicket naming them, or a certain wicket while they
// were on strike.
func dismisses(bowl match.Delivery, playerIndex match.RosterIndex) bool {
	w := bowl.Wicket
	if w.Player != nil {
		return *w.Player == playerIndex
	}
	return bowl.PlayedBy != nil && *bowl.PlayedBy == playerIndex
}
