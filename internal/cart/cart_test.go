package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haeun/go-diary-store/internal/models"
	"github.com/shopspring/decimal"
)

func testProduct(id string, price int64, colors ...string) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Test Product " + id,
		Price:    decimal.NewFromInt(price),
		Category: models.CategoryDaily,
		Images:   []string{"https://example.com/p.jpg"},
		Colors:   colors,
		InStock:  true,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryStorage())
}

func TestAddMergesSameProductAndColor(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(testProduct("1", 28000), 3, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testProduct("1", 28000), 4, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if s.Len() != 1 {
		t.Fatalf("Expected one line item, got %d", s.Len())
	}
	item, ok := s.Item("1")
	if !ok {
		t.Fatal("Expected item for product 1")
	}
	if item.Quantity != 7 {
		t.Errorf("Expected merged quantity 7, got %d", item.Quantity)
	}
}

func TestAddClampsAtMaxQuantity(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(testProduct("1", 28000), 8, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testProduct("1", 28000), 4, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	item, _ := s.Item("1")
	if item.Quantity != MaxQuantity {
		t.Errorf("Expected quantity clamped to %d, got %d", MaxQuantity, item.Quantity)
	}

	// A fresh line also clamps on both ends.
	if err := s.Add(testProduct("2", 32000), 15, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	item, _ = s.Item("2")
	if item.Quantity != MaxQuantity {
		t.Errorf("Expected quantity clamped to %d, got %d", MaxQuantity, item.Quantity)
	}

	if err := s.Add(testProduct("3", 25000), 0, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	item, _ = s.Item("3")
	if item.Quantity != MinQuantity {
		t.Errorf("Expected quantity clamped to %d, got %d", MinQuantity, item.Quantity)
	}
}

func TestAddDistinctColorsAreSeparateLines(t *testing.T) {
	s := newTestStore(t)
	p := testProduct("1", 28000, "Black", "Navy")

	if err := s.Add(p, 1, "Black"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(p, 2, "Navy"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if s.Len() != 2 {
		t.Errorf("Expected two lines for distinct colors, got %d", s.Len())
	}
	if s.TotalItems() != 3 {
		t.Errorf("Expected 3 total items, got %d", s.TotalItems())
	}
}

func TestAddRejectsUndeclaredColor(t *testing.T) {
	s := newTestStore(t)
	p := testProduct("1", 28000, "Black", "Navy")

	if err := s.Add(p, 1, "Chartreuse"); err != ErrColorUnavailable {
		t.Errorf("Expected ErrColorUnavailable, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Cart should stay empty after rejected add, got %d lines", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(testProduct("1", 28000), 1, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s.Remove("1")
	if s.Len() != 0 {
		t.Errorf("Expected empty cart after remove, got %d lines", s.Len())
	}

	// Removing an absent product is a no-op, not an error.
	s.Remove("missing")
	if s.Len() != 0 {
		t.Errorf("Expected empty cart, got %d lines", s.Len())
	}
}

func TestRemoveLineByColor(t *testing.T) {
	s := newTestStore(t)
	p := testProduct("1", 28000, "Black", "Navy")
	if err := s.Add(p, 1, "Black"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(p, 1, "Navy"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s.RemoveLine("1", "Navy")
	if s.Len() != 1 {
		t.Fatalf("Expected one line left, got %d", s.Len())
	}
	item, _ := s.Item("1")
	if item.SelectedColor != "Black" {
		t.Errorf("Expected Black line to survive, got %q", item.SelectedColor)
	}
}

func TestSetQuantity(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(testProduct("1", 28000), 1, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s.SetQuantity("1", 5)
	item, _ := s.Item("1")
	if item.Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", item.Quantity)
	}

	s.SetQuantity("1", 25)
	item, _ = s.Item("1")
	if item.Quantity != MaxQuantity {
		t.Errorf("Expected quantity clamped to %d, got %d", MaxQuantity, item.Quantity)
	}
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(testProduct("1", 28000), 2, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.SetQuantity("1", 0)
	if s.Contains("1") {
		t.Error("Expected line removed at quantity 0")
	}

	if err := s.Add(testProduct("1", 28000), 2, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.SetQuantity("1", -1)
	if s.Contains("1") {
		t.Error("Expected line removed at quantity -1")
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(testProduct("1", 28000), 1, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testProduct("2", 32000), 2, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty cart after clear, got %d lines", s.Len())
	}
	if s.TotalItems() != 0 {
		t.Errorf("Expected 0 total items, got %d", s.TotalItems())
	}
}

func TestSubtotal(t *testing.T) {
	s := newTestStore(t)
	p := testProduct("1", 28000)
	p.Discount = 20
	if err := s.Add(p, 2, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := s.Subtotal(); !got.Equal(decimal.NewFromInt(44800)) {
		t.Errorf("Expected subtotal 44800, got %s", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}

	s := NewStore(storage)
	p := testProduct("1", 28000, "Black", "Navy")
	if err := s.Add(p, 2, "Black"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(p, 1, "Navy"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testProduct("2", 32000), 3, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := s.Items()

	restored := NewStore(storage)
	got := restored.Items()

	if len(got) != len(want) {
		t.Fatalf("Expected %d lines after restore, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Product.ID != want[i].Product.ID {
			t.Errorf("Line %d: expected product %s, got %s", i, want[i].Product.ID, got[i].Product.ID)
		}
		if got[i].SelectedColor != want[i].SelectedColor {
			t.Errorf("Line %d: expected color %q, got %q", i, want[i].SelectedColor, got[i].SelectedColor)
		}
		if got[i].Quantity != want[i].Quantity {
			t.Errorf("Line %d: expected quantity %d, got %d", i, want[i].Quantity, got[i].Quantity)
		}
		if !got[i].Product.Price.Equal(want[i].Product.Price) {
			t.Errorf("Line %d: expected price %s, got %s", i, want[i].Product.Price, got[i].Product.Price)
		}
	}
}

func TestCorruptRecordResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StorageKey+".json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("Write corrupt record: %v", err)
	}

	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}

	s := NewStore(storage)
	if s.Len() != 0 {
		t.Errorf("Expected empty cart after corrupt record, got %d lines", s.Len())
	}

	// The corrupt record was replaced; a second restore stays clean.
	if NewStore(storage).Len() != 0 {
		t.Error("Expected reset record to restore empty")
	}
}

func TestOutOfRangeQuantityTreatedAsCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StorageKey+".json")
	record := `[{"product":{"id":"1","name":"X","price":"28000","category":"daily","images":["i"],"in_stock":true},"quantity":99}]`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatalf("Write record: %v", err)
	}

	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}

	if got := NewStore(storage).Len(); got != 0 {
		t.Errorf("Expected empty cart for out-of-range quantity, got %d lines", got)
	}
}

func TestMissingProductIDTreatedAsCorrupt(t *testing.T) {
	storage := NewMemoryStorage()
	storage.data = []byte(`[{"quantity":2}]`)

	if got := NewStore(storage).Len(); got != 0 {
		t.Errorf("Expected empty cart for line without product, got %d lines", got)
	}
}
