package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	s := openTemp(t)
	set := movegen.Generate()
	king := set.King[:]

	t.Run("MissingSnapshot", func(t *testing.T) {
		if _, err := s.LoadSnapshot("king"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadSnapshot error = %v, want ErrNotFound", err)
		}
		if _, err := s.Diff("king", king); !errors.Is(err, ErrNotFound) {
			t.Errorf("Diff error = %v, want ErrNotFound", err)
		}
	})

	t.Run("SaveLoad", func(t *testing.T) {
		if err := s.SaveSnapshot("king", king); err != nil {
			t.Fatalf("SaveSnapshot: %v", err)
		}
		snap, err := s.LoadSnapshot("king")
		if err != nil {
			t.Fatalf("LoadSnapshot: %v", err)
		}
		if snap.Label != "king" || len(snap.Entries) != 64 {
			t.Fatalf("snapshot %q has %d entries", snap.Label, len(snap.Entries))
		}
		got, err := snap.Bitboards()
		if err != nil {
			t.Fatalf("Bitboards: %v", err)
		}
		for i := range king {
			if got[i] != king[i] {
				t.Errorf("entry %d: got %#x, want %#x", i, uint64(got[i]), uint64(king[i]))
			}
		}
	})

	t.Run("DiffClean", func(t *testing.T) {
		diff, err := s.Diff("king", king)
		if err != nil {
			t.Fatalf("Diff: %v", err)
		}
		if len(diff) != 0 {
			t.Errorf("Diff = %v, want none", diff)
		}
	})

	t.Run("DiffChanged", func(t *testing.T) {
		changed := append([]board.Bitboard(nil), king...)
		changed[board.E4] = changed[board.E4].Clear(board.E5)
		changed[board.H8] = board.Empty
		diff, err := s.Diff("king", changed)
		if err != nil {
			t.Fatalf("Diff: %v", err)
		}
		if len(diff) != 2 || diff[0] != int(board.E4) || diff[1] != int(board.H8) {
			t.Errorf("Diff = %v, want [28 63]", diff)
		}
	})

	t.Run("DiffLength", func(t *testing.T) {
		if _, err := s.Diff("king", king[:10]); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("Diff error = %v, want ErrLengthMismatch", err)
		}
	})

	t.Run("Labels", func(t *testing.T) {
		if err := s.SaveSnapshot("rays", set.Rays[board.North][:]); err != nil {
			t.Fatalf("SaveSnapshot: %v", err)
		}
		labels, err := s.Labels()
		if err != nil {
			t.Fatalf("Labels: %v", err)
		}
		if len(labels) != 2 || labels[0] != "king" || labels[1] != "rays" {
			t.Errorf("Labels = %v, want [king rays]", labels)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeleteSnapshot("rays"); err != nil {
			t.Fatalf("DeleteSnapshot: %v", err)
		}
		if _, err := s.LoadSnapshot("rays"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadSnapshot after delete error = %v", err)
		}
	})
}

func TestReopenKeepsSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	start := movegen.StartingPositions()
	if err := s.SaveSnapshot("start", start.Entries()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	diff, err := s.Diff("start", start.Entries())
	if err != nil || len(diff) != 0 {
		t.Errorf("Diff after reopen = %v, %v", diff, err)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("BBGEN_DB", "")

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	override := filepath.Join(t.TempDir(), "custom")
	t.Setenv("BBGEN_DB", override)
	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if dbDir != override {
		t.Errorf("GetDatabaseDir = %s, want %s", dbDir, override)
	}
}
