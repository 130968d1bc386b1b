package match

import "testing"

func twoOverInnings() *Innings {
	return &Innings{Overs: []Over{
		{BowledBy: 0, Bowls: []Delivery{{ID: "a"}, {ID: "b"}, {ID: "c"}}},
		{BowledBy: 1, Bowls: []Delivery{{ID: "d"}}},
	}}
}

func TestResolveTargetDefaultsToLastBowl(t *testing.T) {
	target, issues := ResolveTarget(twoOverInnings(), nil, nil)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if target.OverIndex != 1 || target.BowlIndex != 0 {
		t.Fatalf("expected last bowl of last over, got %+v", target)
	}
}

func TestResolveTargetExplicitAddress(t *testing.T) {
	target, issues := ResolveTarget(twoOverInnings(), intPtr(0), intPtr(2))
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	if target.OverIndex != 0 || target.BowlIndex != 2 {
		t.Fatalf("expected over 0 bowl 2, got %+v", target)
	}
}

func TestResolveTargetOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		overNo *int
		bowlNo *int
	}{
		{"over beyond innings", intPtr(5), intPtr(0)},
		{"bowl beyond over", intPtr(1), intPtr(3)},
		{"empty innings", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			innings := twoOverInnings()
			if tc.name == "empty innings" {
				innings = &Innings{Overs: []Over{}}
			}
			_, issues := ResolveTarget(innings, tc.overNo, tc.bowlNo)
			if !hasIssue(issues, "bowlNo", "There is no bowl at over") {
				t.Fatalf("expected no-bowl issue, got %+v", issues)
			}
		})
	}
}

func TestResolveTargetHalfAddressRejected(t *testing.T) {
	_, issues := ResolveTarget(twoOverInnings(), intPtr(0), nil)
	if !hasIssue(issues, "bowlNo", "both `overNo` and `bowlNo`") {
		t.Fatalf("expected pair requirement, got %+v", issues)
	}
}
