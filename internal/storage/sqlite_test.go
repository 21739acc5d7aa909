package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(score int) core.RunSummary {
	return core.RunSummary{Seed: int64(score) * 31, TickRate: 60, Ticks: 300 + score, Taps: []int{0, 25, 50}, Score: score}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun("flappy", run(4))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Run(id); err != nil {
		t.Errorf("Run(%d) after reopen failed: %v", id, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := core.RunSummary{Seed: -42, TickRate: 30, Ticks: 812, Taps: []int{0, 12, 40, 41}, Score: 3}
	id, err := store.SaveRun("flappy", want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	rec, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rec.ID != id || rec.GameID != "flappy" {
		t.Errorf("Run() = id %d game %q, expected %d flappy", rec.ID, rec.GameID, id)
	}
	if !reflect.DeepEqual(rec.Run, want) {
		t.Errorf("Run() = %+v, expected %+v", rec.Run, want)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunWithoutTaps(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("flappy", core.RunSummary{Seed: 1, TickRate: 60, Ticks: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	rec, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(rec.Run.Taps) != 0 {
		t.Errorf("Taps = %v, expected none", rec.Run.Taps)
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Run(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Run(99) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1, 5, 3, 5, 2} {
		if _, err := store.SaveRun("flappy", run(score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("other", run(50))

	top, err := store.TopRuns("flappy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Run.Score != 5 || top[1].Run.Score != 5 || top[2].Run.Score != 3 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].ID > top[1].ID {
		t.Error("ties should list the earlier run first")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		store.SaveRun("flappy", run(i))
	}

	recent, err := store.RecentRuns("flappy", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(recent))
	}
	if recent[0].Run.Score != 15 {
		t.Errorf("Expected newest run first, got score %d", recent[0].Run.Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("flappy")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || empty.Average != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun("flappy", run(2))
	store.SaveRun("flappy", run(4))

	stats, err := store.GameStats("flappy")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 4 || stats.Average != 3 || stats.TotalTicks != 606 {
		t.Errorf("GameStats() = %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("flappy", run(1))
	store.SaveRun("flappy", run(2))
	store.SaveRun("other", run(3))

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	flappy, _ := store.RecentRuns("flappy", 10)
	if len(flappy) != 0 {
		t.Errorf("Expected 0 flappy runs after clear, got %d", len(flappy))
	}
	other, _ := store.RecentRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Other runs should not be affected by clearing flappy")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
