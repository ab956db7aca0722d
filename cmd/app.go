// Package cmd implements the CLI application to track a personal net worth.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/patrimoine"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "assets")
	c.Register(&listCmd{}, "assets")
	c.Register(&deleteCmd{}, "assets")
	c.Register(&updateCmd{}, "assets")

	c.Register(&recordCmd{}, "observations")

	c.Register(&historyCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Path to the folder holding the data files")

const (
	assetsFile     = "assets.jsonl"
	valuationsFile = "valuations.jsonl"
	positionsFile  = "positions.jsonl"
)

// Store bundles the three persisted stores the commands work on.
type Store struct {
	Registry  *patrimoine.Registry
	Manual    *patrimoine.Ledger
	Positions *patrimoine.Ledger
}

// LoadStore decodes the three data files from the data folder. A missing
// file yields the corresponding empty store.
func LoadStore() (*Store, error) {
	s := &Store{
		Registry:  patrimoine.NewRegistry(patrimoine.DefaultScheme()),
		Manual:    patrimoine.NewManualLedger(),
		Positions: patrimoine.NewPositionLedger(),
	}

	if err := loadFile(assetsFile, func(f *os.File) (err error) {
		s.Registry, err = patrimoine.DecodeRegistry(f, patrimoine.DefaultScheme())
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadFile(valuationsFile, func(f *os.File) (err error) {
		s.Manual, err = patrimoine.DecodeManualLedger(f)
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadFile(positionsFile, func(f *os.File) (err error) {
		s.Positions, err = patrimoine.DecodePositionLedger(f)
		return err
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func loadFile(name string, decode func(*os.File) error) error {
	f, err := os.Open(filepath.Join(*dataDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // missing file, keep the empty store
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", name, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", name, err)
	}
	return nil
}

// SaveStore encodes the three stores back to the data folder.
func (s *Store) SaveStore() error {
	if err := saveFile(assetsFile, func(f *os.File) error {
		return patrimoine.EncodeRegistry(f, s.Registry)
	}); err != nil {
		return err
	}
	if err := saveFile(valuationsFile, func(f *os.File) error {
		return patrimoine.EncodeLedger(f, s.Manual)
	}); err != nil {
		return err
	}
	return saveFile(positionsFile, func(f *os.File) error {
		return patrimoine.EncodeLedger(f, s.Positions)
	})
}

func saveFile(name string, encode func(*os.File) error) error {
	f, err := os.Create(filepath.Join(*dataDir, name))
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("could not encode %q: %w", name, err)
	}
	return nil
}

// FindAsset resolves a user-supplied asset query, by exact id first, then
// by exact name.
func (s *Store) FindAsset(query string) (patrimoine.Asset, error) {
	if a, ok := s.Registry.Get(patrimoine.AssetID(query)); ok {
		return a, nil
	}
	for a := range s.Registry.Assets() {
		if a.Name == query {
			return a, nil
		}
	}
	return patrimoine.Asset{}, fmt.Errorf("could not find asset %q", query)
}

// FetchQuotes fetches the daily closes for all quoted assets of the
// registry over the window. Provider failures are printed as warnings: the
// reconstruction runs on whatever table came back.
func (s *Store) FetchQuotes(window patrimoine.Range) *patrimoine.QuoteTable {
	tickers := s.Registry.Tickers()
	if len(tickers) == 0 {
		return patrimoine.NewQuoteTable()
	}
	quotes, err := patrimoine.FetchDailyCloses(tickers, window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return quotes
}

// Reconstruct loads nothing: it reconstructs from the already loaded
// stores and a freshly fetched quote table over the window.
func (s *Store) Reconstruct(window patrimoine.Range) *patrimoine.Valuation {
	quotes := s.FetchQuotes(window)
	return patrimoine.Reconstruct(s.Registry, s.Manual, s.Positions, quotes, window)
}

// parseSince parses the -since flag into a lookback window; empty means
// the whole history.
func parseSince(since string) (patrimoine.Range, error) {
	if since == "" {
		return patrimoine.Range{}, nil
	}
	from, err := patrimoine.ParseDate(since)
	if err != nil {
		return patrimoine.Range{}, fmt.Errorf("invalid -since value: %w", err)
	}
	return patrimoine.Since(from), nil
}
