package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
)

const snapshotFile = "registry.json"

// Storage owns the plugin data directory: config.yaml, custom enchantment
// definitions and the exported registry snapshot.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a Storage rooted at dir, creating it and a default config.yaml
// as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	s := &Storage{dir: dir, log: log}
	if err := s.ensureDefaultConfig(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) Dir() string { return s.dir }

// Path resolves p against the data directory unless it is absolute.
func (s *Storage) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.dir, p)
}

func (s *Storage) ensureDefaultConfig() error {
	path := filepath.Join(s.dir, config.FileName+"."+config.FileType)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultFile), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	s.log.Info("wrote default config", "path", path)
	return nil
}

// SaveRegistry writes a snapshot of reg to registry.json atomically and
// returns its path.
func (s *Storage) SaveRegistry(version string, reg *enchant.Registry) (string, error) {
	path := filepath.Join(s.dir, snapshotFile)
	if err := s.atomicWriteJSON(path, NewSnapshot(version, reg)); err != nil {
		return "", err
	}
	s.log.Info("saved registry snapshot", "path", path, "count", reg.Len())
	return path, nil
}

// LoadSnapshot reads registry.json, or returns nil if it does not exist.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	path := filepath.Join(s.dir, snapshotFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

// NewSnapshot captures every registered enchantment together with the keys
// it conflicts with, checked from its own side.
func NewSnapshot(version string, reg *enchant.Registry) *Snapshot {
	all := reg.All()
	snap := &Snapshot{
		Version:      version,
		Enchantments: make([]EnchantmentData, 0, len(all)),
	}
	for _, e := range all {
		d := EnchantmentData{
			Key:       e.Key().String(),
			Kind:      Kind(e),
			MaxLevel:  e.MaxLevel(),
			Curse:     e.Curse(),
			Treasure:  e.Treasure(),
			Conflicts: []string{},
		}
		if v, ok := enchant.VanillaOf(e); ok && d.Kind == KindOverride {
			d.DefaultMaxLevel = v.MaxLevel()
		}
		for _, other := range enchant.Conflicting(e, all) {
			if other.Key() != e.Key() {
				d.Conflicts = append(d.Conflicts, other.Key().String())
			}
		}
		snap.Enchantments = append(snap.Enchantments, d)
	}
	return snap
}

const (
	KindVanilla  = "vanilla"
	KindOverride = "override"
	KindCustom   = "custom"
)

// Kind classifies e for display and export.
func Kind(e enchant.Enchantment) string {
	switch t := e.(type) {
	case *custom.Enchantment:
		return KindCustom
	case *enchant.Override:
		if t.Data().IsZero() {
			return KindVanilla
		}
		return KindOverride
	default:
		return KindVanilla
	}
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
