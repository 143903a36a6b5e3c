package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/bbgen/internal/movegen"
	"github.com/hailam/bbgen/internal/storage"
)

func openDB() (*storage.Storage, error) {
	var (
		db  *storage.Storage
		err error
	)
	if *dbFlag != "" {
		db, err = storage.Open(*dbFlag)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	return db, nil
}

func runSnapshot(tables []movegen.Table) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if *snapFlag {
		for _, t := range tables {
			if err := db.SaveSnapshot(t.Label, t.Entries()); err != nil {
				return fmt.Errorf("snapshot %s: %w", t.Label, err)
			}
		}
		log.Printf("stored %d snapshots", len(tables))
		return nil
	}

	drift := 0
	for _, t := range tables {
		diff, err := db.Diff(t.Label, t.Entries())
		if err != nil {
			return err
		}
		for _, i := range diff {
			log.Printf("%s: entry %d differs from snapshot", t.Label, i)
		}
		drift += len(diff)
	}
	if drift > 0 {
		return fmt.Errorf("%d entries differ from the stored snapshot", drift)
	}
	log.Printf("%d tables match the stored snapshot", len(tables))
	return nil
}

func runSnapshotAdmin() error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if *forgetFlag != "" {
		if err := db.DeleteSnapshot(*forgetFlag); err != nil {
			return fmt.Errorf("forget %s: %w", *forgetFlag, err)
		}
		log.Printf("deleted snapshot %s", *forgetFlag)
		return nil
	}
	return writeSnapshots(os.Stdout, db)
}

// writeSnapshots prints one line per stored snapshot.
func writeSnapshots(w io.Writer, db *storage.Storage) error {
	labels, err := db.Labels()
	if err != nil {
		return err
	}
	for _, l := range labels {
		snap, err := db.LoadSnapshot(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-20s %4d entries  %s\n", l, len(snap.Entries), snap.SavedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
