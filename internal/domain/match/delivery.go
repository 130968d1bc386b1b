package match

// Wicket kinds that dismiss a batter other than the striker. Any other
// non-empty kind implicitly dismisses the striker.
const (
	KindRunOut           = "Run out"
	KindObstructingField = "Obstructing the field"
)

// Boundary is a delivery reaching the field's edge: 4 along the ground or
// 6 aerial, scored off the bat, as a by or as a leg by.
type Boundary struct {
	Run  int    `bson:"run" json:"run"`
	Kind string `bson:"kind,omitempty" json:"kind,omitempty"`
}

const (
	BoundaryRegular = "regular"
	BoundaryBy      = "by"
	BoundaryLegBy   = "legBy"
)

// Wicket records a dismissal. Player is only meaningful for uncertain
// kinds (run out, obstructing the field), where the dismissed batter need
// not be the striker.
type Wicket struct {
	Kind   string       `bson:"kind" json:"kind"`
	Player *RosterIndex `bson:"player,omitempty" json:"player,omitempty"`
}

// IsUncertain reports whether the wicket kind requires an explicitly
// designated dismissed batter.
func (w Wicket) IsUncertain() bool {
	return w.Kind == KindRunOut || w.Kind == KindObstructingField
}

// Delivery is the atomic scoring unit, one ball bowled.
type Delivery struct {
	ID       string       `bson:"_id,omitempty" json:"_id,omitempty"`
	PlayedBy *RosterIndex `bson:"playedBy,omitempty" json:"playedBy,omitempty"`
	Singles  int          `bson:"singles,omitempty" json:"singles,omitempty"`
	By       int          `bson:"by,omitempty" json:"by,omitempty"`
	LegBy    int          `bson:"legBy,omitempty" json:"legBy,omitempty"`
	Boundary *Boundary    `bson:"boundary,omitempty" json:"boundary,omitempty"`
	IsWide   bool         `bson:"isWide,omitempty" json:"isWide,omitempty"`
	IsNo     string       `bson:"isNo,omitempty" json:"isNo,omitempty"`
	Wicket   *Wicket      `bson:"isWicket,omitempty" json:"isWicket,omitempty"`
}

// HasWicket reports whether the delivery carries a dismissal. An empty kind
// is treated as no wicket at all.
func (d Delivery) HasWicket() bool {
	return d.Wicket != nil && d.Wicket.Kind != ""
}

// DeliveryPayload is a presence-aware patch for a delivery. Nil fields were
// absent from the request, which matters for merge-mode updates where absent
// fields must survive from the previous delivery.
type DeliveryPayload struct {
	PlayedBy *RosterIndex `json:"playedBy,omitempty"`
	Singles  *int         `json:"singles,omitempty"`
	By       *int         `json:"by,omitempty"`
	LegBy    *int         `json:"legBy,omitempty"`
	Boundary *Boundary    `json:"boundary,omitempty"`
	IsWide   *bool        `json:"isWide,omitempty"`
	IsNo     *string      `json:"isNo,omitempty"`
	Wicket   *Wicket      `json:"isWicket,omitempty"`

	OverNo *int `json:"overNo,omitempty"`
	BowlNo *int `json:"bowlNo,omitempty"`
}

// Apply lays the payload's present fields over prev and returns the result.
// Absent fields keep their previous values. The previous delivery's ID is
// always retained.
func (p DeliveryPayload) Apply(prev Delivery) Delivery {
	next := prev
	if p.PlayedBy != nil {
		next.PlayedBy = p.PlayedBy
	}
	if p.Singles != nil {
		next.Singles = *p.Singles
	}
	if p.By != nil {
		next.By = *p.By
	}
	if p.LegBy != nil {
		next.LegBy = *p.LegBy
	}
	if p.Boundary != nil {
		next.Boundary = p.Boundary
	}
	if p.IsWide != nil {
		next.IsWide = *p.IsWide
	}
	if p.IsNo != nil {
		next.IsNo = *p.IsNo
	}
	if p.Wicket != nil {
		next.Wicket = p.Wicket
	}
	return next
}

// Replace builds a fresh delivery from the payload alone, carrying over only
// the previous delivery's ID, and its striker when the payload omits one.
func (p DeliveryPayload) Replace(prev Delivery) Delivery {
	next := Delivery{ID: prev.ID, PlayedBy: prev.PlayedBy}
	if p.PlayedBy != nil {
		next.PlayedBy = p.PlayedBy
	}
	if p.Singles != nil {
		next.Singles = *p.Singles
	}
	if p.By != nil {
		next.By = *p.By
	}
	if p.LegBy != nil {
		next.LegBy = *p.LegBy
	}
	if p.Boundary != nil {
		next.Boundary = p.Boundary
	}
	if p.IsWide != nil {
		next.IsWide = *p.IsWide
	}
	if p.IsNo != nil {
		next.IsNo = *p.IsNo
	}
	if p.Wicket != nil {
		next.Wicket = p.Wicket
	}
	return next
}

// Delivery converts a creation payload into a stored delivery.
func (p DeliveryPayload) Delivery() Delivery {
	return p.Replace(Delivery{})
}
