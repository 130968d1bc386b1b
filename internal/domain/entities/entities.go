// Package entities holds the owner-scoped reference documents the match
// aggregate points at: players, teams and umpires.
package entities

// Player is a creator-owned player document. Deliveries never reference
// players directly; matches snapshot player IDs into rosters at begin time.
type Player struct {
	ID        string `bson:"_id" json:"_id"`
	Creator   string `bson:"creator" json:"creator"`
	Name      string `bson:"name" json:"name"`
	JerseyNo  int    `bson:"jerseyNo" json:"jerseyNo"`
	IsDeleted bool   `bson:"isDeleted" json:"-"`
}

// Team is a creator-owned team document.
type Team struct {
	ID        string `bson:"_id" json:"_id"`
	Creator   string `bson:"creator" json:"creator"`
	Name      string `bson:"name" json:"name"`
	ShortName string `bson:"shortName" json:"shortName"`
}

// Umpire is a creator-owned umpire document.
type Umpire struct {
	ID      string `bson:"_id" json:"_id"`
	Creator string `bson:"creator" json:"creator"`
	Name    string `bson:"name" json:"name"`
}
