package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/hex"
	"github.com/wtheisen/notorious/metrics"
)

const opening = `
moves:
  - {player: 0, action: port, cell: {q: -1, r: 0}}
  - {player: 1, action: port, cell: {q: 0, r: 0}}
  - {player: 0, action: captain, captain: sail}
  - {player: 1, action: captain, captain: build}
  - {player: 0, action: captain, captain: sink}
  - {player: 1, action: captain, captain: chart}
  - player: 0
    action: sail
    ships:
      - kind: sloop
        path: [{q: -1, r: 0}, {q: -1, r: -1}]
`

func TestParse(t *testing.T) {
	t.Run("every action", func(t *testing.T) {
		data := `
moves:
  - {player: 0, action: port, cell: {q: 1, r: 0}}
  - {player: 0, action: captain, captain: steal}
  - {player: 0, action: forfeit, captain: steal}
  - {player: 0, action: sail, bribes: 1, ships: [{kind: galleon, path: [{q: 0, r: 0}, {q: 1, r: 0}]}]}
  - {player: 0, action: build, cell: {q: 0, r: 0}, galleon: true}
  - {player: 0, action: steal, cell: {q: 0, r: 0}, victim: 1, place_sloop: true}
  - player: 0
    action: sink
    cell: {q: 0, r: 0}
    victim: 1
    ship: galleon
    relocate: {from: {q: 1, r: 0}, to: {q: 0, r: 0}}
    extra: {victim: 2, kind: sloop}
  - {player: 0, action: draw, extra_draw: true}
  - {player: 0, action: keep, keep: [0, 2]}
  - {player: 0, action: claim, chart: 7}
  - {player: 0, action: pass}
  - {player: 0, action: wind}
`
		s, err := Parse([]byte(data))
		require.NoError(t, err)
		require.Len(t, s.Moves, 12)

		sink, err := s.Moves[6].Move()
		require.NoError(t, err)
		require.Equal(t, game.Sink{
			Player:   0,
			Cell:     hex.NewCoord(0, 0),
			Victim:   1,
			Kind:     game.Galleon,
			Relocate: &game.Hop{From: hex.NewCoord(1, 0), To: hex.NewCoord(0, 0)},
			Extra:    &game.SinkTarget{Victim: 2, Kind: game.Sloop},
		}, sink)

		sail, err := s.Moves[3].Move()
		require.NoError(t, err)
		require.Equal(t, game.Sail{Player: 0, Bribes: 1, Moves: []game.ShipMove{
			{Kind: game.Galleon, Path: []hex.Coord{hex.NewCoord(0, 0), hex.NewCoord(1, 0)}},
		}}, sail)
	})

	t.Run("bad steps", func(t *testing.T) {
		for name, data := range map[string]string{
			"unknown action":  "moves: [{player: 0, action: parley}]",
			"missing cell":    "moves: [{player: 0, action: port}]",
			"missing captain": "moves: [{player: 0, action: captain}]",
			"unknown captain": "moves: [{player: 0, action: captain, captain: nap}]",
			"unknown ship":    "moves: [{player: 0, action: sink, cell: {q: 0, r: 0}, ship: raft}]",
		} {
			_, err := Parse([]byte(data))
			require.Error(t, err, name)
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opening.yaml")
	require.NoError(t, os.WriteFile(path, []byte(opening), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Moves, 7)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestAgents(t *testing.T) {
	s, err := Parse([]byte(opening))
	require.NoError(t, err)
	gs, err := game.NewGameState([]game.Seat{{}, {}}, game.StandardRules(), game.DefaultLayout(), nil)
	require.NoError(t, err)

	agents := Agents(s, 2, func(seat int) agent.Agent {
		return agent.NewRandomAgent(uint64(seat), metrics.NewDummyCollector())
	})

	var state game.State = gs
	for range s.Moves {
		seat := state.(*game.GameState).Active()
		move, m := agents[seat].FindMove(state, nil)
		require.Equal(t, "script", m.Agent)
		state = state.Play(move)
	}
	final := state.(*game.GameState)
	require.Equal(t, 1, final.Board.Count(hex.NewCoord(-1, -1), 0, game.Sloop))
	require.Equal(t, 1, final.Active())

	// seat 1 has no steps left and falls back to the bot
	move, _ := agents[1].FindMove(state, nil)
	require.NoError(t, final.Validate(move))
}
