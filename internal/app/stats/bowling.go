package stats

import (
	"math"
	"strings"
)

// bowlingInnings is one innings' worth of the player's bowling: runs
// conceded (extras included), wickets credited to the bowler, and
// deliveries bowled.
type bowlingInnings struct {
	run       int
	wicket    int
	totalBowl int
}

// Run outs never credit the bowler. Matched as a fixed two-value set.
var bowlerExcludedKinds = []string{"run out", "run-out"}

func bowlingCareer(contributions []contribution) BowlingStat {
	innings := make([]bowlingInnings, 0, len(contributions))
	for _, c := range contributions {
		if c.bowling == nil {
			continue
		}
		in := bowlingInningsOf(c)
		if in.totalBowl == 0 {
			continue
		}
		innings = append(innings, in)
	}

	stat := BowlingStat{NumInnings: len(innings)}
	totalRuns := 0
	totalBowls := 0
	best := BestFigure{Wicket: 0, Run: math.MaxInt}
	for _, in := range innings {
		stat.TotalWickets += in.wicket
		totalRuns += in.run
		totalBowls += in.totalBowl
		if in.wicket > best.Wicket || (in.wicket == best.Wicket && in.run < best.Run) {
			best = BestFigure{Wicket: in.wicket, Run: in.run}
		}
	}
	if best.Run == math.MaxInt {
		best.Run = 0
	}
	stat.BestFigure = best
	if stat.TotalWickets > 0 {
		avg := float64(totalRuns) / float64(stat.TotalWickets)
		stat.AvgWicket = &avg
		sr := float64(totalBowls) / float64(stat.TotalWickets)
		stat.StrikeRate = &sr
	}
	return stat
}

func bowlingInningsOf(c contribution) bowlingInnings {
	var in bowlingInnings
	for _, over := range c.bowling.Overs {
		if over.BowledBy != c.playerIndex {
			continue
		}
		// wide and no bowls still count toward the bowling strike rate
		in.totalBowl += len(over.Bowls)
		for _, bowl := range over.Bowls {
			if bowl.HasWicket() && creditsBowler(bowl.Wicket.Kind) {
				in.wicket++
			}
			in.run += bowl.Singles + bowl.By + bowl.LegBy
			if bowl.Boundary != nil {
				in.run += bowl.Boundary.Run
			}
			if bowl.IsWide || bowl.IsNo != "" {
				in.run++
			}
		}
	}
	return in
}

func creditsBowler(kind string) bool {
	lowered := strings.ToLower(kind)
	for _, excluded := range bowlerExcludedKinds {
		if lowered == excluded {
			return false
		}
	}
	return true
}
