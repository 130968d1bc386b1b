package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
)

// Memory keeps a thread-safe copy of all documents in memory. It backs the
// tests and local runs without a database.
type Memory struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	players map[string]entities.Player
	teams   map[string]entities.Team
	umpires map[string]entities.Umpire
}

// NewMemory constructs an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		matches: make(map[string]match.Match),
		players: make(map[string]entities.Player),
		teams:   make(map[string]entities.Team),
		umpires: make(map[string]entities.Umpire),
	}
}

var _ Store = (*Memory)(nil)

func (s *Memory) Ping(context.Context) error { return nil }

func (s *Memory) InsertMatch(_ context.Context, m match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = cloneMatch(m)
	return nil
}

func (s *Memory) FindMatch(_ context.Context, id, creator string) (match.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok || m.Creator != creator {
		return match.Match{}, false, nil
	}
	return cloneMatch(m), true, nil
}

func (s *Memory) ListMatches(_ context.Context, creator string, f MatchFilter) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]match.Match, 0)
	for _, m := range s.matches {
		if m.Creator != creator {
			continue
		}
		if f.Done != (m.State == match.StateDone) {
			continue
		}
		if f.Search != "" && !matchesSearch(m, f) {
			continue
		}
		c := cloneMatch(m)
		if f.Compact {
			c.Innings1 = nil
			c.Innings2 = nil
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func matchesSearch(m match.Match, f MatchFilter) bool {
	if containsFold(m.Name, f.Search) {
		return true
	}
	if f.Done {
		return false
	}
	for _, tag := range m.Tags {
		if containsFold(tag, f.Search) {
			return true
		}
	}
	return false
}

func (s *Memory) ReplaceMatch(_ context.Context, m match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.ID]; !ok {
		return fmt.Errorf("match %s does not exist", m.ID)
	}
	s.matches[m.ID] = cloneMatch(m)
	return nil
}

func (s *Memory) DeleteMatch(_ context.Context, id, creator string) (match.Match, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok || m.Creator != creator {
		return match.Match{}, false, nil
	}
	delete(s.matches, id)
	return cloneMatch(m), true, nil
}

func (s *Memory) MatchNameExists(_ context.Context, creator, name, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.ID == excludeID || m.Creator != creator {
			continue
		}
		if strings.EqualFold(m.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) MatchTags(_ context.Context, creator string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, m := range s.matches {
		if m.Creator != creator {
			continue
		}
		for _, tag := range m.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *Memory) DoneMatchesWithPlayer(_ context.Context, creator, playerID string) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]match.Match, 0)
	for _, m := range s.matches {
		if m.Creator != creator || m.State != match.StateDone {
			continue
		}
		if containsString(m.Team1Players, playerID) || containsString(m.Team2Players, playerID) {
			result = append(result, cloneMatch(m))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *Memory) PushOver(_ context.Context, id string, innings match.State, over match.Over) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return fmt.Errorf("match %s does not exist", id)
	}
	in, err := inningsOf(&m, innings)
	if err != nil {
		return err
	}
	in.Overs = append(in.Overs, cloneOver(over))
	s.matches[id] = m
	return nil
}

func (s *Memory) PushDelivery(_ context.Context, id string, innings match.State, overIndex int, d match.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return fmt.Errorf("match %s does not exist", id)
	}
	in, err := inningsOf(&m, innings)
	if err != nil {
		return err
	}
	if overIndex < 0 || overIndex >= len(in.Overs) {
		return fmt.Errorf("match %s has no over %d in %s", id, overIndex, innings)
	}
	in.Overs[overIndex].Bowls = append(in.Overs[overIndex].Bowls, d)
	s.matches[id] = m
	return nil
}

func (s *Memory) SetDelivery(_ context.Context, id string, innings match.State, overIndex, bowlIndex int, d match.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return fmt.Errorf("match %s does not exist", id)
	}
	in, err := inningsOf(&m, innings)
	if err != nil {
		return err
	}
	if overIndex < 0 || overIndex >= len(in.Overs) {
		return fmt.Errorf("match %s has no over %d in %s", id, overIndex, innings)
	}
	bowls := in.Overs[overIndex].Bowls
	if bowlIndex < 0 || bowlIndex >= len(bowls) {
		return fmt.Errorf("match %s has no bowl %d in over %d of %s", id, bowlIndex, overIndex, innings)
	}
	bowls[bowlIndex] = d
	s.matches[id] = m
	return nil
}

func inningsOf(m *match.Match, s match.State) (*match.Innings, error) {
	switch s {
	case match.StateInnings1:
		if m.Innings1 == nil {
			m.Innings1 = &match.Innings{Overs: []match.Over{}}
		}
		return m.Innings1, nil
	case match.StateInnings2:
		if m.Innings2 == nil {
			m.Innings2 = &match.Innings{Overs: []match.Over{}}
		}
		return m.Innings2, nil
	default:
		return nil, fmt.Errorf("%s is not an innings", s)
	}
}

func (s *Memory) InsertPlayer(_ context.Context, p entities.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
	return nil
}

func (s *Memory) FindPlayer(_ context.Context, id, creator string) (entities.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok || p.Creator != creator || p.IsDeleted {
		return entities.Player{}, false, nil
	}
	return p, true, nil
}

func (s *Memory) ListPlayers(_ context.Context, creator, search string) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entities.Player, 0)
	for _, p := range s.players {
		if p.Creator != creator || p.IsDeleted {
			continue
		}
		if search != "" && !containsFold(p.Name, search) && !containsFold(fmt.Sprint(p.JerseyNo), search) {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *Memory) UpdatePlayer(_ context.Context, p entities.Player) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.players[p.ID]
	if !ok || existing.Creator != p.Creator {
		return false, nil
	}
	p.IsDeleted = existing.IsDeleted
	s.players[p.ID] = p
	return true, nil
}

func (s *Memory) SoftDeletePlayer(_ context.Context, id, creator string) (entities.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok || p.Creator != creator || p.IsDeleted {
		return entities.Player{}, false, nil
	}
	p.IsDeleted = true
	s.players[id] = p
	return p, true, nil
}

func (s *Memory) PlayerExists(_ context.Context, id, creator string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return ok && p.Creator == creator && !p.IsDeleted, nil
}

func (s *Memory) PlayerNameExists(_ context.Context, creator, name, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.ID == excludeID || p.Creator != creator || p.IsDeleted {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) PlayerJerseyExists(_ context.Context, creator string, jerseyNo int, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.ID == excludeID || p.Creator != creator || p.IsDeleted {
			continue
		}
		if p.JerseyNo == jerseyNo {
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) InsertTeam(_ context.Context, t entities.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = t
	return nil
}

func (s *Memory) ListTeams(_ context.Context, creator, search string) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entities.Team, 0)
	for _, t := range s.teams {
		if t.Creator != creator {
			continue
		}
		if search != "" && !containsFold(t.Name, search) && !containsFold(t.ShortName, search) {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *Memory) UpdateTeam(_ context.Context, t entities.Team) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.teams[t.ID]
	if !ok || existing.Creator != t.Creator {
		return false, nil
	}
	s.teams[t.ID] = t
	return true, nil
}

func (s *Memory) DeleteTeam(_ context.Context, id, creator string) (entities.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok || t.Creator != creator {
		return entities.Team{}, false, nil
	}
	delete(s.teams, id)
	return t, true, nil
}

func (s *Memory) TeamExists(_ context.Context, id, creator string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return ok && t.Creator == creator, nil
}

func (s *Memory) InsertUmpire(_ context.Context, u entities.Umpire) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.umpires[u.ID] = u
	return nil
}

func (s *Memory) ListUmpires(_ context.Context, creator string) ([]entities.Umpire, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entities.Umpire, 0)
	for _, u := range s.umpires {
		if u.Creator == creator {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *Memory) UpdateUmpire(_ context.Context, u entities.Umpire) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.umpires[u.ID]
	if !ok || existing.Creator != u.Creator {
		return false, nil
	}
	s.umpires[u.ID] = u
	return true, nil
}

func (s *Memory) DeleteUmpire(_ context.Context, id, creator string) (entities.Umpire, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.umpires[id]
	if !ok || u.Creator != creator {
		return entities.Umpire{}, false, nil
	}
	delete(s.umpires, id)
	return u, true, nil
}

func (s *Memory) UmpireExists(_ context.Context, id, creator string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.umpires[id]
	return ok && u.Creator == creator, nil
}

func cloneMatch(m match.Match) match.Match {
	c := m
	c.Umpires = append([]string(nil), m.Umpires...)
	c.Tags = append([]string(nil), m.Tags...)
	c.Team1Players = append([]string(nil), m.Team1Players...)
	c.Team2Players = append([]string(nil), m.Team2Players...)
	c.Innings1 = cloneInnings(m.Innings1)
	c.Innings2 = cloneInnings(m.Innings2)
	return c
}

func cloneInnings(in *match.Innings) *match.Innings {
	if in == nil {
		return nil
	}
	overs := make([]match.Over, len(in.Overs))
	for i, over := range in.Overs {
		overs[i] = cloneOver(over)
	}
	return &match.Innings{Overs: overs}
}

func cloneOver(o match.Over) match.Over {
	return match.Over{
		BowledBy: o.BowledBy,
		Bowls:    append([]match.Delivery(nil), o.Bowls...),
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
