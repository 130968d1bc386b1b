package match

import "fmt"

// Issue is a single field-level validation problem, shaped so a client can
// highlight the offending form field.
type Issue struct {
	Param string `json:"param"`
	Value any    `json:"value,omitempty"`
	Msg   string `json:"msg"`
}

// Rule inspects a delivery payload and reports zero or more issues.
type Rule func(d Delivery, p DeliveryPayload) []Issue

// deliveryRules is the ordered rule set for a delivery. Rules run to
// completion so a response can carry every simultaneous problem, not just
// the first one hit.
var deliveryRules = []Rule{
	ruleNonNegativeRuns,
	ruleSingles,
	ruleLegBy,
	ruleBoundary,
	ruleWicket,
}

// ValidateDelivery checks the effective delivery d against the scoring
// rules. For merge-mode edits d must be the post-merge result; p is the raw
// payload, used only for presence-dependent checks.
func ValidateDelivery(d Delivery, p DeliveryPayload) []Issue {
	var issues []Issue
	for _, rule := range deliveryRules {
		issues = append(issues, rule(d, p)...)
	}
	return issues
}

// ValidateCreate additionally requires a striker, which edits may omit.
func ValidateCreate(p DeliveryPayload) []Issue {
	d := p.Delivery()
	issues := ValidateDelivery(d, p)
	if p.PlayedBy == nil || *p.PlayedBy < 0 {
		issues = append(issues, Issue{
			Param: "playedBy",
			Msg:   "`playedBy` is required and should be an integer",
		})
	}
	return issues
}

// ValidateAddressing enforces that overNo and bowlNo are supplied together
// and non-negative.
func ValidateAddressing(p DeliveryPayload) []Issue {
	var issues []Issue
	if p.OverNo != nil && *p.OverNo < 0 {
		issues = append(issues, Issue{
			Param: "overNo",
			Value: *p.OverNo,
			Msg:   "`overNo` must be a non-negative integer",
		})
	}
	if p.BowlNo != nil && *p.BowlNo < 0 {
		issues = append(issues, Issue{
			Param: "bowlNo",
			Value: *p.BowlNo,
			Msg:   "`bowlNo` must be a non-negative integer",
		})
	}
	if (p.OverNo == nil) != (p.BowlNo == nil) {
		param := "bowlNo"
		if p.BowlNo != nil {
			param = "overNo"
		}
		issues = append(issues, Issue{
			Param: param,
			Msg:   "Must provide either both `overNo` and `bowlNo` or none",
		})
	}
	return issues
}

func ruleNonNegativeRuns(d Delivery, _ DeliveryPayload) []Issue {
	var issues []Issue
	for _, f := range []struct {
		name  string
		value int
	}{
		{"singles", d.Singles},
		{"by", d.By},
		{"legBy", d.LegBy},
	} {
		if f.value < 0 {
			issues = append(issues, Issue{
				Param: f.name,
				Value: f.value,
				Msg:   fmt.Sprintf("`%s` should be an integer", f.name),
			})
		}
	}
	if d.PlayedBy != nil && *d.PlayedBy < 0 {
		issues = append(issues, Issue{
			Param: "playedBy",
			Value: int(*d.PlayedBy),
			Msg:   "`playedBy` is required and should be an integer",
		})
	}
	return issues
}

func ruleSingles(d Delivery, _ DeliveryPayload) []Issue {
	if d.Singles <= 0 {
		return nil
	}
	var issues []Issue
	if d.LegBy > 0 {
		issues = append(issues, Issue{
			Param: "singles",
			Value: d.Singles,
			Msg:   "Singles and leg by cannot be taken in the same bowl",
		})
	}
	if d.Boundary != nil && (d.Boundary.Kind == BoundaryRegular || d.Boundary.Kind == BoundaryLegBy) {
		issues = append(issues, Issue{
			Param: "singles",
			Value: d.Singles,
			Msg:   fmt.Sprintf("Singles and %sboundary cannot be taken in the same bowl", boundaryLabel(d.Boundary.Kind)),
		})
	}
	if d.IsWide {
		issues = append(issues, Issue{
			Param: "singles",
			Value: d.Singles,
			Msg:   "Singles cannot be taken in a wide bowl",
		})
	}
	return issues
}

func ruleLegBy(d Delivery, _ DeliveryPayload) []Issue {
	if d.LegBy <= 0 {
		return nil
	}
	var issues []Issue
	if d.Boundary != nil && (d.Boundary.Kind == BoundaryRegular || d.Boundary.Kind == BoundaryLegBy) {
		issues = append(issues, Issue{
			Param: "legBy",
			Value: d.LegBy,
			Msg:   fmt.Sprintf("Leg by singles and %sboundary cannot be taken in the same bowl", boundaryLabel(d.Boundary.Kind)),
		})
	}
	if d.IsWide {
		issues = append(issues, Issue{
			Param: "legBy",
			Value: d.LegBy,
			Msg:   "Leg by singles cannot be taken in a wide bowl",
		})
	}
	return issues
}

func ruleBoundary(d Delivery, _ DeliveryPayload) []Issue {
	if d.Boundary == nil {
		return nil
	}
	var issues []Issue
	if d.IsWide && (d.Boundary.Kind == BoundaryRegular || d.Boundary.Kind == BoundaryLegBy) {
		issues = append(issues, Issue{
			Param: "boundary",
			Msg:   fmt.Sprintf("Cannot take %sboundary in a wide bowl", boundaryLabel(d.Boundary.Kind)),
		})
	}
	return issues
}

func ruleWicket(d Delivery, _ DeliveryPayload) []Issue {
	if !d.HasWicket() {
		return nil
	}
	w := *d.Wicket
	var issues []Issue
	if w.IsUncertain() {
		if w.Player == nil {
			issues = append(issues, Issue{
				Param: "isWicket",
				Msg:   fmt.Sprintf("Out player should be provided for out type %s", w.Kind),
			})
		}
	} else {
		if d.IsWide || d.IsNo != "" {
			bowlType := "Wide"
			if d.IsNo != "" {
				bowlType = "No"
			}
			issues = append(issues, Issue{
				Param: "isWicket",
				Msg:   fmt.Sprintf("Wicket type %s cannot happen in a %s bowl", w.Kind, bowlType),
			})
		}
		if scoreType := runLabel(d); scoreType != "" {
			issues = append(issues, Issue{
				Param: "isWicket",
				Msg:   fmt.Sprintf("Cannot take %s run with wicket type %s", scoreType, w.Kind),
			})
		}
	}
	if d.Boundary != nil && d.Boundary.Run != 0 {
		issues = append(issues, Issue{
			Param: "isWicket",
			Msg:   "Wicket and boundary cannot happen in the same bowl",
		})
	}
	return issues
}

func boundaryLabel(kind string) string {
	if kind == BoundaryLegBy {
		return "leg by "
	}
	return ""
}

func runLabel(d Delivery) string {
	switch {
	case d.Singles > 0:
		return "single"
	case d.By > 0:
		return "by"
	case d.LegBy > 0:
		return "leg by"
	default:
		return ""
	}
}
