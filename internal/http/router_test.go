package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cricket-scoring-service/internal/app/matches"
	"cricket-scoring-service/internal/app/rosters"
	"cricket-scoring-service/internal/app/scoring"
	"cricket-scoring-service/internal/app/stats"
	"cricket-scoring-service/internal/auth"
	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/http/handlers"
	"cricket-scoring-service/internal/metrics"
	"cricket-scoring-service/internal/store"
)

type env struct {
	router nethttp.Handler
	store  *store.Memory
	token  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	mem := store.NewMemory()
	verifier, err := auth.NewVerifier("test-secret")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	token, err := verifier.Sign("user-1", "asha", time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	rec := metrics.NewRecorder()
	h := handlers.New(
		matches.NewService(mem, mem, mem, nil),
		scoring.NewService(mem, mem, nil, rec),
		stats.NewService(mem, mem, nil),
		rosters.NewService(mem, mem, mem, nil),
		mem.Ping,
		nil,
	)
	return &env{router: NewRouter(h, verifier, nil, rec), store: mem, token: token}
}

// do issues an authenticated request and decodes the JSON response into out.
func (e *env) do(t *testing.T, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec
}

func (e *env) seedTeams(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, team := range []entities.Team{
		{ID: "t1", Creator: "user-1", Name: "Lions", ShortName: "LIO"},
		{ID: "t2", Creator: "user-1", Name: "Tigers", ShortName: "TIG"},
	} {
		if err := e.store.InsertTeam(ctx, team); err != nil {
			t.Fatalf("seed team: %v", err)
		}
	}
}

func (e *env) seedPlayers(t *testing.T, n int) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("p%d", i)
		p := entities.Player{ID: id, Creator: "user-1", Name: fmt.Sprintf("Player %d", i), JerseyNo: i}
		if err := e.store.InsertPlayer(ctx, p); err != nil {
			t.Fatalf("seed player: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestHealthIsPublic(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestReadyIsPublic(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(nethttp.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(nethttp.MethodGet, "/api/matches", nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateMatchEndpoint(t *testing.T) {
	e := newEnv(t)
	e.seedTeams(t)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Match   struct {
			ID    string   `json:"_id"`
			Name  string   `json:"name"`
			State string   `json:"state"`
			Tags  []string `json:"tags"`
		} `json:"match"`
	}
	rec := e.do(t, nethttp.MethodPost, "/api/matches", map[string]any{
		"name": "weekend final", "team1": "t1", "team2": "t2", "overs": 20,
	}, &body)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !body.Success || body.Message != "Successfully created match Weekend Final" {
		t.Fatalf("body = %+v", body)
	}
	if body.Match.ID == "" || body.Match.Tags == nil {
		t.Fatalf("match = %+v", body.Match)
	}

	var listed []json.RawMessage
	if rec := e.do(t, nethttp.MethodGet, "/api/matches", nil, &listed); rec.Code != nethttp.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d matches", len(listed))
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	e := newEnv(t)
	e.seedTeams(t)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Err     []struct {
			Param string `json:"param"`
			Msg   string `json:"msg"`
		} `json:"err"`
	}
	rec := e.do(t, nethttp.MethodPost, "/api/matches", map[string]any{
		"team1": "t1", "team2": "t2", "overs": 0,
	}, &body)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Success {
		t.Fatal("success should be false")
	}
	if len(body.Err) != 2 {
		t.Fatalf("issues = %+v", body.Err)
	}
	if body.Err[0].Param != "name" || body.Err[1].Param != "overs" {
		t.Fatalf("issue params = %+v", body.Err)
	}
}

func TestNotFoundEnvelope(t *testing.T) {
	e := newEnv(t)
	var body struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Err     []string `json:"err"`
	}
	rec := e.do(t, nethttp.MethodGet, "/api/matches/absent", nil, &body)
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Success || body.Message != "Match could not found" {
		t.Fatalf("body = %+v", body)
	}
	if len(body.Err) != 1 || body.Err[0] != "Match could not found" {
		t.Fatalf("err = %v", body.Err)
	}
}

func TestScoringFlowThroughAPI(t *testing.T) {
	e := newEnv(t)
	e.seedTeams(t)
	players := e.seedPlayers(t, 4)

	var created struct {
		Match struct {
			ID string `json:"_id"`
		} `json:"match"`
	}
	if rec := e.do(t, nethttp.MethodPost, "/api/matches", map[string]any{
		"name": "Flow", "team1": "t1", "team2": "t2", "overs": 20,
	}, &created); rec.Code != nethttp.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	id := created.Match.ID

	begin := map[string]any{
		"team1Players": players[:2],
		"team2Players": players[2:],
		"team1Captain": players[0],
		"team2Captain": players[2],
	}
	if rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/begin", begin, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("begin status = %d, body %s", rec.Code, rec.Body.String())
	}

	toss := map[string]any{"won": "t1", "choice": "Bat"}
	if rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/toss", toss, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("toss status = %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := e.do(t, nethttp.MethodPost, "/api/matches/"+id+"/over", map[string]any{"bowledBy": 0}, nil); rec.Code != nethttp.StatusCreated {
		t.Fatalf("over status = %d, body %s", rec.Code, rec.Body.String())
	}

	var bowled struct {
		Success bool   `json:"success"`
		ID      string `json:"_id"`
	}
	delivery := map[string]any{"playedBy": 0, "singles": 2}
	if rec := e.do(t, nethttp.MethodPost, "/api/matches/"+id+"/bowl", delivery, &bowled); rec.Code != nethttp.StatusCreated {
		t.Fatalf("bowl status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !bowled.Success || bowled.ID == "" {
		t.Fatalf("bowl body = %+v", bowled)
	}

	var fetched struct {
		State    string `json:"state"`
		Innings1 struct {
			Overs []struct {
				BowledBy int `json:"bowledBy"`
				Bowls    []struct {
					Singles int `json:"singles"`
				} `json:"bowls"`
			} `json:"overs"`
		} `json:"innings1"`
	}
	if rec := e.do(t, nethttp.MethodGet, "/api/matches/"+id, nil, &fetched); rec.Code != nethttp.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if fetched.State != "innings1" {
		t.Fatalf("state = %q", fetched.State)
	}
	if len(fetched.Innings1.Overs) != 1 || len(fetched.Innings1.Overs[0].Bowls) != 1 {
		t.Fatalf("innings = %+v", fetched.Innings1)
	}
	if fetched.Innings1.Overs[0].Bowls[0].Singles != 2 {
		t.Fatalf("delivery = %+v", fetched.Innings1.Overs[0].Bowls[0])
	}

	declare := map[string]any{"state": "done"}
	if rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/declare", declare, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("declare status = %d, body %s", rec.Code, rec.Body.String())
	}

	var done []struct {
		ID string `json:"_id"`
	}
	if rec := e.do(t, nethttp.MethodGet, "/api/matches/done", nil, &done); rec.Code != nethttp.StatusOK {
		t.Fatalf("done status = %d", rec.Code)
	}
	if len(done) != 1 || done[0].ID != id {
		t.Fatalf("done list = %+v", done)
	}

	var stat struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if rec := e.do(t, nethttp.MethodGet, "/api/players/"+players[0], nil, &stat); rec.Code != nethttp.StatusOK {
		t.Fatalf("stats status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !stat.Success {
		t.Fatalf("stats body = %+v", stat)
	}
}

func TestDeclareWithoutBodyOpensSecondInnings(t *testing.T) {
	e := newEnv(t)
	e.seedTeams(t)
	players := e.seedPlayers(t, 4)

	var created struct {
		Match struct {
			ID string `json:"_id"`
		} `json:"match"`
	}
	if rec := e.do(t, nethttp.MethodPost, "/api/matches", map[string]any{
		"name": "Legacy", "team1": "t1", "team2": "t2", "overs": 20,
	}, &created); rec.Code != nethttp.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	id := created.Match.ID

	begin := map[string]any{
		"team1Players": players[:2],
		"team2Players": players[2:],
		"team1Captain": players[0],
		"team2Captain": players[2],
	}
	if rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/begin", begin, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("begin status = %d, body %s", rec.Code, rec.Body.String())
	}
	toss := map[string]any{"won": "t1", "choice": "Bat"}
	if rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/toss", toss, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("toss status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Legacy clients declare with no body at all; innings1 rolls over
	// into a fresh innings2.
	var declared struct {
		State    string `json:"state"`
		Innings2 *struct {
			Overs []json.RawMessage `json:"overs"`
		} `json:"innings2"`
	}
	rec := e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/declare", nil, &declared)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("declare status = %d, body %s", rec.Code, rec.Body.String())
	}
	if declared.State != "innings2" || declared.Innings2 == nil {
		t.Fatalf("declare body = %+v", declared)
	}

	rec = e.do(t, nethttp.MethodPut, "/api/matches/"+id+"/declare", nil, &declared)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("second declare status = %d, body %s", rec.Code, rec.Body.String())
	}
	if declared.State != "done" {
		t.Fatalf("state after second bodyless declare = %q", declared.State)
	}
}

func TestRosterEndpoints(t *testing.T) {
	e := newEnv(t)

	var createdPlayer struct {
		Player struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"player"`
	}
	rec := e.do(t, nethttp.MethodPost, "/api/players", map[string]any{"name": "asha rao", "jerseyNo": 7}, &createdPlayer)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create player status = %d, body %s", rec.Code, rec.Body.String())
	}
	if createdPlayer.Player.Name != "Asha Rao" {
		t.Fatalf("player = %+v", createdPlayer.Player)
	}

	if rec := e.do(t, nethttp.MethodDelete, "/api/players/"+createdPlayer.Player.ID, nil, nil); rec.Code != nethttp.StatusOK {
		t.Fatalf("delete player status = %d", rec.Code)
	}

	var createdTeam struct {
		Team struct {
			ID        string `json:"_id"`
			ShortName string `json:"shortName"`
		} `json:"team"`
	}
	rec = e.do(t, nethttp.MethodPost, "/api/teams", map[string]any{"name": "Lions", "shortName": "lio"}, &createdTeam)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create team status = %d, body %s", rec.Code, rec.Body.String())
	}
	if createdTeam.Team.ShortName != "LIO" {
		t.Fatalf("team = %+v", createdTeam.Team)
	}

	var createdUmpire struct {
		Umpire struct {
			ID string `json:"_id"`
		} `json:"umpire"`
	}
	rec = e.do(t, nethttp.MethodPost, "/api/umpires", map[string]any{"name": "Ravi"}, &createdUmpire)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create umpire status = %d, body %s", rec.Code, rec.Body.String())
	}

	var umpires []struct {
		Name string `json:"name"`
	}
	if rec := e.do(t, nethttp.MethodGet, "/api/umpires", nil, &umpires); rec.Code != nethttp.StatusOK {
		t.Fatalf("list umpires status = %d", rec.Code)
	}
	if len(umpires) != 1 || umpires[0].Name != "Ravi" {
		t.Fatalf("umpires = %+v", umpires)
	}
}
