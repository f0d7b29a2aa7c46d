// Package store provides a SQLite-backed library of named parameter presets
// and a history of past runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bvrgo/buyrent-calculator/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed preset persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preset database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the preset database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PresetInfo summarizes a stored preset without deserializing its parameters.
type PresetInfo struct {
	Name        string
	Years       int
	HomePrice   string
	MonthlyRent string
	UpdatedAt   time.Time
}

// SavePreset stores a named parameter set, replacing any previous version.
func (s *Store) SavePreset(name string, params *domain.SimulationParams) error {
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	blob, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("serializing preset: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT INTO presets
		(name, params_yaml, years, home_price, monthly_rent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			params_yaml = excluded.params_yaml,
			years = excluded.years,
			home_price = excluded.home_price,
			monthly_rent = excluded.monthly_rent,
			updated_at = excluded.updated_at`,
		name, string(blob), params.Years, params.HomePrice.String(), params.MonthlyRent.String(), now, now,
	)
	return err
}

// GetPreset loads a named parameter set.
func (s *Store) GetPreset(name string) (*domain.SimulationParams, error) {
	var blob string
	err := s.db.QueryRow("SELECT params_yaml FROM presets WHERE name = ?", name).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	var params domain.SimulationParams
	if err := yaml.Unmarshal([]byte(blob), &params); err != nil {
		return nil, fmt.Errorf("deserializing preset %q: %w", name, err)
	}
	return &params, nil
}

// ListPresets returns summaries of all stored presets ordered by name.
func (s *Store) ListPresets() ([]PresetInfo, error) {
	rows, err := s.db.Query("SELECT name, years, home_price, monthly_rent, updated_at FROM presets ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []PresetInfo
	for rows.Next() {
		var pi PresetInfo
		var updated string
		if err := rows.Scan(&pi.Name, &pi.Years, &pi.HomePrice, &pi.MonthlyRent, &updated); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			pi.UpdatedAt = t
		}
		result = append(result, pi)
	}
	return result, rows.Err()
}

// DeletePreset removes a named parameter set.
func (s *Store) DeletePreset(name string) error {
	res, err := s.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("preset %q not found", name)
	}
	return nil
}

// PresetCount returns the number of stored presets.
func (s *Store) PresetCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM presets").Scan(&n)
	return n, err
}

// RecordRun appends a run summary to the history. presetName may be empty
// for ad hoc runs.
func (s *Store) RecordRun(presetName string, result *domain.SimulationResult) error {
	buyWins := 0
	if result.BuyWins() {
		buyWins = 1
	}
	var preset any
	if presetName != "" {
		preset = presetName
	}
	_, err := s.db.Exec(`INSERT INTO runs
		(preset_name, final_net_worth_buy, final_net_worth_rent, total_interest_paid, total_rent_paid, buy_wins, ran_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		preset,
		result.Summary.FinalNetWorthBuy.String(),
		result.Summary.FinalNetWorthRent.String(),
		result.Summary.TotalInterestPaid.String(),
		result.Summary.TotalRentPaid.String(),
		buyWins,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}
