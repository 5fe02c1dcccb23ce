package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apanich/number-challenge/game/config"
	"github.com/apanich/number-challenge/game/engine"
	"github.com/apanich/number-challenge/game/service"
)

// newTestStore builds a FilePersistence over a temp directory, backed by the
// repo's shipped board configs.
func newTestStore(t *testing.T) (*FilePersistence, *config.Manager) {
	t.Helper()

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	store, err := NewFilePersistence(t.TempDir(), configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return store, configManager
}

// midGameSession builds a session whose board is deterministically half
// played: five values spread across the default 20-slot board, with a known
// value waiting to be placed.
func midGameSession(t *testing.T, id string, cm *config.Manager) *service.Session {
	t.Helper()

	gameConfig := cm.GetDefault()
	eng, err := engine.NewEngine(gameConfig)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	state := eng.GetState()
	for i := range state.Slots {
		state.Slots[i] = engine.EmptySlot
	}
	state.Slots[0] = 47
	state.Slots[4] = 212
	state.Slots[9] = 388
	state.Slots[14] = 605
	state.Slots[19] = 941
	state.CurrentValue = 500
	if err := eng.SetState(state); err != nil {
		t.Fatalf("Failed to seed board state: %v", err)
	}

	return &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         gameConfig,
		Stats:          &engine.Stats{GamesPlayed: 3, GamesWon: 1, TotalPlacements: 42},
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	store, cm := newTestStore(t)
	sess := midGameSession(t, "b4d2", cm)

	if err := store.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists("b4d2") {
		t.Fatal("session file missing after Save")
	}

	loaded, err := store.Load("b4d2")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != "b4d2" {
		t.Errorf("ID = %q, want %q", loaded.ID, "b4d2")
	}
	if loaded.Config.Name != sess.Config.Name {
		t.Errorf("config name = %q, want %q", loaded.Config.Name, sess.Config.Name)
	}
	if got := loaded.Engine.GetCurrentValue(); got != 500 {
		t.Errorf("pending value = %d, want 500", got)
	}
	if got := loaded.Engine.GetPlacedCount(); got != 5 {
		t.Errorf("placed count = %d, want 5", got)
	}

	slots := loaded.Engine.GetState().Slots
	for i, want := range map[int]int{0: 47, 4: 212, 9: 388, 14: 605, 19: 941} {
		if slots[i] != want {
			t.Errorf("slot %d = %d, want %d", i, slots[i], want)
		}
	}
	if slots[10] != engine.EmptySlot {
		t.Errorf("slot 10 = %d, want empty", slots[10])
	}

	if loaded.Stats == nil || loaded.Stats.GamesWon != 1 || loaded.Stats.TotalPlacements != 42 {
		t.Errorf("stats not restored: %+v", loaded.Stats)
	}
}

func TestFilePersistence_SaveCapturesNewPlacements(t *testing.T) {
	store, cm := newTestStore(t)
	sess := midGameSession(t, "c7e1", cm)

	if err := store.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 500 fits between 388 at slot 9 and 605 at slot 14.
	if !sess.Engine.Place(11) {
		t.Fatal("placing 500 into the 388..605 gap should succeed")
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save after placement failed: %v", err)
	}

	loaded, err := store.Load("c7e1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := loaded.Engine.GetPlacedCount(); got != 6 {
		t.Errorf("placed count = %d, want 6", got)
	}
	if got := loaded.Engine.GetState().Slots[11]; got != 500 {
		t.Errorf("slot 11 = %d, want 500", got)
	}
	if len(loaded.Engine.GetPlacementHistory()) != len(sess.Engine.GetPlacementHistory()) {
		t.Error("placement history lost across save/load")
	}
}

func TestFilePersistence_ListAndDelete(t *testing.T) {
	store, cm := newTestStore(t)

	for _, id := range []string{"d1f3", "e2a4"} {
		if err := store.Save(midGameSession(t, id, cm)); err != nil {
			t.Fatalf("Save(%q) failed: %v", id, err)
		}
	}

	ids, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	found := make(map[string]bool)
	for _, id := range ids {
		found[id] = true
	}
	if !found["d1f3"] || !found["e2a4"] {
		t.Errorf("ListAll = %v, want both saved sessions", ids)
	}

	if err := store.Delete("e2a4"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists("e2a4") {
		t.Error("session file still present after Delete")
	}
	if _, err := store.Load("e2a4"); err == nil {
		t.Error("Load succeeded for a deleted session")
	}
}

func TestFilePersistence_ErrorCases(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Load("zz99"); err == nil {
		t.Error("Load succeeded for an unknown ID")
	}
	if err := store.Delete("zz99"); err == nil {
		t.Error("Delete succeeded for an unknown ID")
	}
	if err := store.Save(nil); err == nil {
		t.Error("Save accepted a nil session")
	}
}

func TestFilePersistence_FileLayout(t *testing.T) {
	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	dir := t.TempDir()
	store, err := NewFilePersistence(dir, configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	if err := store.Save(midGameSession(t, "f5b6", configManager)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(dir, "f5b6.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("session file not written at %s: %v", path, err)
	}

	content := string(data)
	for _, field := range []string{`"id"`, `"config_id"`, `"created_at"`, `"game_state"`, `"stats"`} {
		if !strings.Contains(content, field) {
			t.Errorf("session file missing field %s", field)
		}
	}
}
