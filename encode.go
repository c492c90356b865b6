package cardwise

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/etnz/cardwise/date"
)

// This file persists the wallet state in a folder, one small JSON document
// per concern, human-readable and git-friendly. The entries are independent:
// a corrupt one falls back to its default without touching the others.

const (
	walletFilename        = "wallet.json"
	perksFilename         = "perks.json"
	expandedFilename      = "expanded.json"
	anniversariesFilename = "anniversaries.json"
)

// Store reads and writes wallet state under a directory.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store { return &Store{Dir: dir} }

// Load reads the wallet state. It never fails: a missing entry takes its
// default (the starter wallet for the card list, empty maps for the rest),
// and a corrupt entry does the same with a logged warning. The decoded card
// list is de-duplicated, preserving first occurrence.
func (s *Store) Load() *Wallet {
	w := NewWallet()

	var ids []string
	if loadEntry(filepath.Join(s.Dir, walletFilename), &ids) {
		for _, id := range ids {
			if !slices.Contains(w.cardIDs, id) {
				w.cardIDs = append(w.cardIDs, id)
			}
		}
	} else {
		w.cardIDs = DefaultWallet().cardIDs
	}

	var perks map[string]Usage
	if loadEntry(filepath.Join(s.Dir, perksFilename), &perks) && perks != nil {
		w.perksUsed = perks
	}
	var expanded map[string]bool
	if loadEntry(filepath.Join(s.Dir, expandedFilename), &expanded) && expanded != nil {
		w.expanded = expanded
	}
	var anniversaries map[string]date.MonthDay
	if loadEntry(filepath.Join(s.Dir, anniversariesFilename), &anniversaries) && anniversaries != nil {
		w.anniversaries = anniversaries
	}
	return w
}

// loadEntry decodes one JSON document into v. It reports whether the entry
// was usable; a parse failure is logged, a missing file is not.
func loadEntry(filename string, v any) bool {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		log.Printf("warning: cannot read state entry %q: %v", filename, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("warning: cannot parse state entry %q, using defaults: %v", filename, err)
		return false
	}
	return true
}

// Save writes all four state entries. The caller logs the error; a failed
// save is never fatal, the in-memory wallet stays authoritative for the rest
// of the session.
func (s *Store) Save(w *Wallet) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create state directory %q: %w", s.Dir, err)
	}
	entries := []struct {
		filename string
		value    any
	}{
		{walletFilename, w.cardIDs},
		{perksFilename, w.perksUsed},
		{expandedFilename, w.expanded},
		{anniversariesFilename, w.anniversaries},
	}
	for _, e := range entries {
		data, err := json.MarshalIndent(e.value, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot encode state entry %q: %w", e.filename, err)
		}
		path := filepath.Join(s.Dir, e.filename)
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("cannot write state entry %q: %w", path, err)
		}
	}
	return nil
}
