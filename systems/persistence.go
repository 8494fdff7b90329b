package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	cfg "github.com/automoto/crygeen/config"
	"github.com/quasilyte/gdata"
)

// ControlsItem is the storage key of the control remap table.
const ControlsItem = "control_data.json"

// ErrMalformedControls is returned when the stored table cannot be used.
var ErrMalformedControls = errors.New("malformed control table")

// itemStore is the part of the gdata manager the control store needs.
// LoadItem returns nil data and no error for an item that was never saved.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ControlStore reads and writes the control remap table.
type ControlStore struct {
	items itemStore
}

// OpenControlStore opens the per-user data directory of appName.
func OpenControlStore(appName string) (*ControlStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open game data: %w", err)
	}
	return &ControlStore{items: m}, nil
}

// NewMemoryControlStore returns a store that lives only as long as the process.
func NewMemoryControlStore() *ControlStore {
	return &ControlStore{items: memoryItems{}}
}

// Load returns the stored table. On first run the defaults are written and
// read back.
func (s *ControlStore) Load() ([]cfg.ControlBinding, error) {
	data, err := s.items.LoadItem(ControlsItem)
	if err != nil {
		return nil, fmt.Errorf("load controls: %w", err)
	}
	if len(data) == 0 {
		logger.Info("writing default controls", "item", ControlsItem)
		if err := s.Save(cfg.DefaultControls()); err != nil {
			return nil, err
		}
		if data, err = s.items.LoadItem(ControlsItem); err != nil {
			return nil, fmt.Errorf("reload controls: %w", err)
		}
	}

	var table []cfg.ControlBinding
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedControls, err)
	}
	if err := validateControls(table); err != nil {
		return nil, err
	}
	return table, nil
}

// Save overwrites the stored table.
func (s *ControlStore) Save(table []cfg.ControlBinding) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode controls: %w", err)
	}
	if err := s.items.SaveItem(ControlsItem, data); err != nil {
		return fmt.Errorf("save controls: %w", err)
	}
	return nil
}

// validateControls checks the table lists the built-in actions in order.
func validateControls(table []cfg.ControlBinding) error {
	defaults := cfg.DefaultControls()
	if len(table) != len(defaults) {
		return fmt.Errorf("%w: %d actions, want %d", ErrMalformedControls, len(table), len(defaults))
	}
	for i, b := range table {
		if b.Title != defaults[i].Title {
			return fmt.Errorf("%w: action %d is %q, want %q", ErrMalformedControls, i, b.Title, defaults[i].Title)
		}
	}
	return nil
}

type memoryItems map[string][]byte

func (m memoryItems) LoadItem(itemKey string) ([]byte, error) {
	return m[itemKey], nil
}

func (m memoryItems) SaveItem(itemKey string, data []byte) error {
	m[itemKey] = append([]byte(nil), data...)
	return nil
}
