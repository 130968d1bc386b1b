// Package store provides the persistence layer: an in-memory implementation
// used by tests and local runs, and a MongoDB implementation for production.
// Scoring writes are single atomic updates scoped by match ID and field path;
// that atomicity is the only concurrency safety net, and there is no
// optimistic-concurrency check (last write wins).
package store

import (
	"context"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
)

// MatchFilter narrows a match listing.
type MatchFilter struct {
	// Done selects completed matches; otherwise active ones.
	Done bool
	// Search matches name (and tags, for active listings) case-insensitively.
	Search string
	// Compact drops the innings payloads from the result.
	Compact bool
}

// MatchStore is the persistence contract for the match aggregate. Every
// lookup is scoped by creator; a match under another creator behaves as
// missing.
type MatchStore interface {
	InsertMatch(ctx context.Context, m match.Match) error
	FindMatch(ctx context.Context, id, creator string) (match.Match, bool, error)
	ListMatches(ctx context.Context, creator string, f MatchFilter) ([]match.Match, error)
	// ReplaceMatch overwrites the whole document.
	ReplaceMatch(ctx context.Context, m match.Match) error
	DeleteMatch(ctx context.Context, id, creator string) (match.Match, bool, error)
	MatchNameExists(ctx context.Context, creator, name, excludeID string) (bool, error)
	MatchTags(ctx context.Context, creator string) ([]string, error)
	// DoneMatchesWithPlayer returns the creator's completed matches whose
	// rosters contain the player.
	DoneMatchesWithPlayer(ctx context.Context, creator, playerID string) ([]match.Match, error)

	// Field-path scoped atomic updates against one innings.
	PushOver(ctx context.Context, id string, innings match.State, over match.Over) error
	PushDelivery(ctx context.Context, id string, innings match.State, overIndex int, d match.Delivery) error
	SetDelivery(ctx context.Context, id string, innings match.State, overIndex, bowlIndex int, d match.Delivery) error
}

// PlayerStore persists players. Deletes are soft so historical match
// rosters keep resolving.
type PlayerStore interface {
	InsertPlayer(ctx context.Context, p entities.Player) error
	FindPlayer(ctx context.Context, id, creator string) (entities.Player, bool, error)
	ListPlayers(ctx context.Context, creator, search string) ([]entities.Player, error)
	UpdatePlayer(ctx context.Context, p entities.Player) (bool, error)
	SoftDeletePlayer(ctx context.Context, id, creator string) (entities.Player, bool, error)
	PlayerExists(ctx context.Context, id, creator string) (bool, error)
	PlayerNameExists(ctx context.Context, creator, name, excludeID string) (bool, error)
	PlayerJerseyExists(ctx context.Context, creator string, jerseyNo int, excludeID string) (bool, error)
}

// TeamStore persists teams.
type TeamStore interface {
	InsertTeam(ctx context.Context, t entities.Team) error
	ListTeams(ctx context.Context, creator, search string) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, t entities.Team) (bool, error)
	DeleteTeam(ctx context.Context, id, creator string) (entities.Team, bool, error)
	TeamExists(ctx context.Context, id, creator string) (bool, error)
}

// UmpireStore persists umpires.
type UmpireStore interface {
	InsertUmpire(ctx context.Context, u entities.Umpire) error
	ListUmpires(ctx context.Context, creator string) ([]entities.Umpire, error)
	UpdateUmpire(ctx context.Context, u entities.Umpire) (bool, error)
	DeleteUmpire(ctx context.Context, id, creator string) (entities.Umpire, bool, error)
	UmpireExists(ctx context.Context, id, creator string) (bool, error)
}

// Store is the full persistence surface the server wires together.
type Store interface {
	MatchStore
	PlayerStore
	TeamStore
	UmpireStore

	// Ping reports whether the backend is reachable. Readiness probes use it.
	Ping(ctx context.Context) error
}
