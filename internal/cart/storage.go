package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haeun/go-diary-store/internal/models"
)

// StorageKey is the fixed namespaced key the cart record is persisted
// under. The file backend maps it to "<key>.json" inside its directory.
const StorageKey = "diary-shop-cart"

// ErrCorruptRecord marks a persisted cart record that could not be
// decoded or failed validation. The store recovers by resetting to an
// empty cart; it is never surfaced to the end user.
var ErrCorruptRecord = errors.New("corrupt cart record")

// Storage persists the full line-item sequence of a cart. Load returns
// nil items when no record exists.
type Storage interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// FileStorage keeps the cart record as a JSON document on disk. Writes
// go through a temp file and rename so a crash mid-write cannot leave a
// truncated record.
type FileStorage struct {
	path string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart storage dir: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}, nil
}

func (f *FileStorage) Load() ([]models.CartItem, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart record: %w", err)
	}
	return decodeRecord(data)
}

func (f *FileStorage) Save(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart record: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart record: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace cart record: %w", err)
	}
	return nil
}

// MemoryStorage holds the record in memory, without durability. Useful
// for tests and ephemeral carts.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]models.CartItem, error) {
	if m.data == nil {
		return nil, nil
	}
	return decodeRecord(m.data)
}

func (m *MemoryStorage) Save(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart record: %w", err)
	}
	m.data = data
	return nil
}

// decodeRecord parses and validates a persisted record. The record has
// no version field, so absent or malformed fields are treated as
// corruption rather than migrated.
func decodeRecord(data []byte) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	for i := range items {
		if items[i].Product.ID == "" {
			return nil, fmt.Errorf("%w: line %d missing product", ErrCorruptRecord, i)
		}
		if items[i].Quantity < MinQuantity || items[i].Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: line %d quantity %d out of range", ErrCorruptRecord, i, items[i].Quantity)
		}
	}
	return items, nil
}
