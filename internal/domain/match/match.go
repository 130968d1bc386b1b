package match

// State is the lifecycle phase of a match.
type State string

const (
	StateUnstarted State = ""
	StateToss      State = "toss"
	StateInnings1  State = "innings1"
	StateInnings2  State = "innings2"
	StateDone      State = "done"
)

// InningsStates are the states during which scoring mutations are accepted.
var InningsStates = []State{StateInnings1, StateInnings2}

// IsInnings reports whether s is one of the two innings states.
func (s State) IsInnings() bool {
	return s == StateInnings1 || s == StateInnings2
}

// RosterIndex addresses a player inside a match's frozen roster snapshot.
// It is positional and match-local, never a persistent player ID.
type RosterIndex int

// Innings is one team's turn batting: an ordered sequence of overs.
type Innings struct {
	Overs []Over `bson:"overs" json:"overs"`
}

// Over groups the deliveries bowled by one bowler.
type Over struct {
	BowledBy RosterIndex `bson:"bowledBy" json:"bowledBy"`
	Bowls    []Delivery  `bson:"bowls" json:"bowls"`
}

// Match is the root aggregate. Creator scoping is enforced on every read
// and write; a match that exists under another creator is reported as not
// found, never as forbidden.
type Match struct {
	ID      string   `bson:"_id" json:"_id"`
	Creator string   `bson:"creator" json:"creator"`
	Name    string   `bson:"name" json:"name"`
	Team1   string   `bson:"team1" json:"team1"`
	Team2   string   `bson:"team2" json:"team2"`
	Umpires []string `bson:"umpires,omitempty" json:"umpires,omitempty"`
	Overs   int      `bson:"overs" json:"overs"`
	Tags    []string `bson:"tags" json:"tags"`

	Team1Players []string `bson:"team1Players,omitempty" json:"team1Players,omitempty"`
	Team2Players []string `bson:"team2Players,omitempty" json:"team2Players,omitempty"`
	Team1Captain string   `bson:"team1Captain,omitempty" json:"team1Captain,omitempty"`
	Team2Captain string   `bson:"team2Captain,omitempty" json:"team2Captain,omitempty"`

	Team1WonToss  bool `bson:"team1WonToss,omitempty" json:"team1WonToss,omitempty"`
	Team1BatFirst bool `bson:"team1BatFirst,omitempty" json:"team1BatFirst,omitempty"`

	State    State    `bson:"state" json:"state"`
	Innings1 *Innings `bson:"innings1,omitempty" json:"innings1,omitempty"`
	Innings2 *Innings `bson:"innings2,omitempty" json:"innings2,omitempty"`
}

// CurrentInnings returns the innings being scored under the match's current
// state, or nil when the match is not in an innings state. Callers must not
// reach into Innings1/Innings2 by state name themselves.
func CurrentInnings(m *Match) *Innings {
	switch m.State {
	case StateInnings1:
		return m.Innings1
	case StateInnings2:
		return m.Innings2
	default:
		return nil
	}
}

// BattingRoster returns the roster batting in the given innings state.
func (m *Match) BattingRoster(s State) []string {
	team1Bats := m.Team1BatFirst
	if s == StateInnings2 {
		team1Bats = !team1Bats
	}
	if team1Bats {
		return m.Team1Players
	}
	return m.Team2Players
}
