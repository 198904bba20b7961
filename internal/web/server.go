// Package web exposes the simulation engine over HTTP: JSON endpoints for
// one-shot simulations and catalog lookups, plus a WebSocket stream that
// replays a battle's timeline event by event.
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
	blog "github.com/bitcloud2/pvpoke-sub001/internal/log"
	"github.com/bitcloud2/pvpoke-sub001/internal/roster"
	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

// Server is the simulation HTTP server.
type Server struct {
	roster *roster.Roster
	mux    *http.ServeMux
}

// NewServer creates a server backed by the given roster file, or the
// built-in roster when the path is empty.
func NewServer(rosterFile string) (*Server, error) {
	ros := roster.Builtin()
	if rosterFile != "" {
		var err error
		ros, err = roster.Load(rosterFile)
		if err != nil {
			return nil, fmt.Errorf("load roster: %w", err)
		}
	}

	s := &Server{roster: ros, mux: http.NewServeMux()}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/species", s.handleSpecies)
	s.mux.HandleFunc("GET /api/types", s.handleTypes)
	s.mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	s.mux.HandleFunc("GET /ws/watch", s.handleWatch)
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// --- JSON request/response types ---

// IVSpec is the JSON form of a combatant's individual values.
type IVSpec struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Stamina int `json:"stamina"`
}

// CombatantSpec selects and configures one side of a simulation.
type CombatantSpec struct {
	Species      string   `json:"species"`
	Level        float64  `json:"level,omitempty"`
	IVs          *IVSpec  `json:"ivs,omitempty"`
	FastMove     string   `json:"fastMove,omitempty"`
	ChargedMoves []string `json:"chargedMoves,omitempty"`
	FarmEnergy   bool     `json:"farmEnergy,omitempty"`
	BaitShields  bool     `json:"baitShields,omitempty"`
	Shields      *int     `json:"shields,omitempty"` // default 2
	Policy       string   `json:"policy,omitempty"`  // "smart" (default) or "random"
}

// SimulateRequest is the body of POST /api/simulate and the first frame of
// a /ws/watch connection.
type SimulateRequest struct {
	Combatants [2]CombatantSpec `json:"combatants"`
	Seed       int64            `json:"seed,omitempty"`
	MaxTurns   int              `json:"maxTurns,omitempty"`
	Timeline   bool             `json:"timeline,omitempty"`
}

// CombatantInfo echoes the resolved combatant back to the caller.
type CombatantInfo struct {
	Species string `json:"species"`
	CP      int    `json:"cp"`
	MaxHP   int    `json:"maxHP"`
}

// SimulateResponse is the outcome of one simulation.
type SimulateResponse struct {
	ID         string           `json:"id"`
	Combatants [2]CombatantInfo `json:"combatants"`
	Result     *battle.Result   `json:"result"`
}

// SpeciesInfo is the JSON representation of a roster entry.
type SpeciesInfo struct {
	Name         string   `json:"name"`
	Types        []string `json:"types"`
	Attack       int      `json:"attack"`
	Defense      int      `json:"defense"`
	Stamina      int      `json:"stamina"`
	FastMoves    []string `json:"fastMoves"`
	ChargedMoves []string `json:"chargedMoves"`
}

// --- Handlers ---

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	var out []SpeciesInfo
	for _, sp := range s.roster.Species() {
		info := SpeciesInfo{
			Name:         sp.Name,
			Types:        []string{sp.Types[0].String()},
			Attack:       sp.Attack,
			Defense:      sp.Defense,
			Stamina:      sp.Stamina,
			FastMoves:    sp.FastMoves,
			ChargedMoves: sp.ChargedMoves,
		}
		if sp.Types[1] != typechart.TypeNone {
			info.Types = append(info.Types, sp.Types[1].String())
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	def1, err := typechart.ParseType(r.URL.Query().Get("defending"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	def2, err := typechart.ParseType(r.URL.Query().Get("defending2"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if attacking := r.URL.Query().Get("attacking"); attacking != "" {
		atk, err := typechart.ParseType(attacking)
		if err != nil || atk == typechart.TypeNone {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad attacking type %q", attacking))
			return
		}
		writeJSON(w, http.StatusOK, map[string]float64{
			attacking: typechart.Effectiveness(atk, def1, def2),
		})
		return
	}

	spread := make(map[string]float64, typechart.TypeCount)
	for t, mult := range typechart.Spread(def1, def2) {
		spread[t.String()] = mult
	}
	writeJSON(w, http.StatusOK, spread)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	resp, _, err := s.runSimulation(req, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleWatch streams one simulation's timeline over a WebSocket: the
// client sends a SimulateRequest frame, the server replies with one frame
// per timeline event followed by a result frame.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	_, reqData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read request: %v", err)
		return
	}
	var req SimulateRequest
	if err := json.Unmarshal(reqData, &req); err != nil {
		wsConn.Close(websocket.StatusPolicyViolation, "expected a simulate request")
		return
	}

	req.Timeline = true
	resp, events, err := s.runSimulation(req, blog.NewMemoryLogger())
	if err != nil {
		msg, _ := json.Marshal(map[string]string{"type": "error", "error": err.Error()})
		wsConn.Write(ctx, websocket.MessageText, msg)
		wsConn.Close(websocket.StatusNormalClosure, "bad request")
		return
	}

	for _, ev := range events {
		frame, _ := json.Marshal(map[string]any{"type": "event", "event": ev})
		if err := wsConn.Write(ctx, websocket.MessageText, frame); err != nil {
			return
		}
	}
	final, _ := json.Marshal(map[string]any{"type": "result", "response": resp})
	wsConn.Write(ctx, websocket.MessageText, final)
	wsConn.Close(websocket.StatusNormalClosure, "done")
}

// runSimulation builds both combatants and runs one battle to completion.
func (s *Server) runSimulation(req SimulateRequest, logger blog.EventLogger) (*SimulateResponse, []blog.TimelineEvent, error) {
	cfg := battle.DefaultConfig()
	cfg.Seed = req.Seed
	cfg.Timeline = req.Timeline
	cfg.Logger = logger
	if req.MaxTurns > 0 {
		cfg.MaxTurns = req.MaxTurns
	}

	var combatants [2]*battle.Pokemon
	var info [2]CombatantInfo
	for i, spec := range req.Combatants {
		opts := roster.BuildOptions{
			Level:        spec.Level,
			FastMove:     spec.FastMove,
			ChargedMoves: spec.ChargedMoves,
			FarmEnergy:   spec.FarmEnergy,
			BaitShields:  spec.BaitShields,
		}
		if spec.IVs != nil {
			opts.IVs = &battle.IVs{Attack: spec.IVs.Attack, Defense: spec.IVs.Defense, Stamina: spec.IVs.Stamina}
		}
		p, err := s.roster.Build(spec.Species, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("combatant %d: %w", i+1, err)
		}
		combatants[i] = p
		info[i] = CombatantInfo{Species: p.Species, CP: p.CP(), MaxHP: p.MaxHP}

		if spec.Shields != nil {
			cfg.Shields[i] = *spec.Shields
		}
		if spec.Policy == "random" {
			cfg.Policies[i] = battle.PolicyRandom
		}
	}

	b, err := battle.New(cfg, combatants[0], combatants[1])
	if err != nil {
		return nil, nil, err
	}
	result := b.Run()

	resp := &SimulateResponse{
		ID:         uuid.NewString(),
		Combatants: info,
		Result:     result,
	}
	return resp, result.Timeline, nil
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
