package match

import "testing"

func TestStateIsInnings(t *testing.T) {
	for s, want := range map[State]bool{
		StateUnstarted: false,
		StateToss:      false,
		StateInnings1:  true,
		StateInnings2:  true,
		StateDone:      false,
	} {
		if got := s.IsInnings(); got != want {
			t.Fatalf("IsInnings(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestCurrentInnings(t *testing.T) {
	m := &Match{
		State:    StateInnings1,
		Innings1: &Innings{Overs: []Over{{BowledBy: 1}}},
		Innings2: &Innings{},
	}
	if got := CurrentInnings(m); got != m.Innings1 {
		t.Fatal("expected innings1 while in innings1")
	}

	m.State = StateInnings2
	if got := CurrentInnings(m); got != m.Innings2 {
		t.Fatal("expected innings2 while in innings2")
	}

	m.State = StateToss
	if got := CurrentInnings(m); got != nil {
		t.Fatal("expected nil outside innings states")
	}
}

func TestBattingRoster(t *testing.T) {
	m := &Match{
		Team1Players:  []string{"a", "b"},
		Team2Players:  []string{"c", "d"},
		Team1BatFirst: true,
	}
	if got := m.BattingRoster(StateInnings1); got[0] != "a" {
		t.Fatalf("expected team1 batting first, got %v", got)
	}
	if got := m.BattingRoster(StateInnings2); got[0] != "c" {
		t.Fatalf("expected team2 batting second, got %v", got)
	}

	m.Team1BatFirst = false
	if got := m.BattingRoster(StateInnings1); got[0] != "c" {
		t.Fatalf("expected team2 batting first, got %v", got)
	}
}
