package menu

import "testing"

func newPopulatedMenu(t *testing.T, values ...string) *Menu[string] {
	t.Helper()
	m := New[string]()
	err := m.Registry().Batch(func() error {
		for _, v := range values {
			if err := m.Registry().Add("", v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to populate menu: %v", err)
	}
	return m
}

func TestSelectionAdoptsRegistryItem(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b", "c")
	if err := m.Cell().Set("b"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	item, _ := m.Registry().Lookup("b")
	if m.SelectedItem() != item {
		t.Fatalf("expected registry item adopted as selection")
	}
	if m.SelectedText() != "b" {
		t.Fatalf("expected label surface %q, got %q", "b", m.SelectedText())
	}
}

func TestSelectionSynthesizesTransientItemForUnknownValue(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	if err := m.Cell().Set("outside"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	sel := m.SelectedItem()
	if sel == nil {
		t.Fatalf("expected transient selected item")
	}
	if sel.Value != "outside" || sel.Label != "outside" {
		t.Fatalf("expected synthesized record, got %+v", sel)
	}
	if _, ok := m.Registry().Lookup("outside"); ok {
		t.Fatalf("transient item must not enter the registry")
	}
	if m.Registry().Len() != 2 {
		t.Fatalf("expected registry untouched, got %d items", m.Registry().Len())
	}
}

func TestSelectionClearedWhenValueAbsent(t *testing.T) {
	m := newPopulatedMenu(t, "a")
	_ = m.Cell().Set("a")
	if err := m.Cell().ClearValue(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if m.SelectedItem() != nil {
		t.Fatalf("expected no selection for absent value")
	}
	if m.SelectedText() != "" {
		t.Fatalf("expected empty label surface, got %q", m.SelectedText())
	}
}

func TestReplaceResetsMissingValueToFirstWithOneNotification(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	_ = m.Cell().Set("b")
	var changes int
	m.Cell().Observe(func(_, _ Opt[string]) { changes++ })
	err := m.Registry().SetAll([]Entry[string]{{Value: "x"}, {Value: "y"}})
	if err != nil {
		t.Fatalf("unexpected setall error: %v", err)
	}
	if changes != 1 {
		t.Fatalf("expected exactly one value change, got %d", changes)
	}
	if v, _ := m.Cell().Value().Get(); v != "x" {
		t.Fatalf("expected reset to new first item, got %q", v)
	}
}

func TestReplaceToEmptyListResetsValueToAbsent(t *testing.T) {
	m := newPopulatedMenu(t, "a")
	_ = m.Cell().Set("a")
	var changes int
	m.Cell().Observe(func(_, _ Opt[string]) { changes++ })
	if err := m.Registry().Clear(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if m.Cell().Value().IsSome() {
		t.Fatalf("expected absent value after clearing all items")
	}
	if changes != 1 {
		t.Fatalf("expected exactly one value change, got %d", changes)
	}
	if m.SelectedItem() != nil {
		t.Fatalf("expected no selection after clear")
	}
}

func TestReplaceKeepsPresentValueAndRefreshesSelection(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	_ = m.Cell().Set("b")
	var valueChanges int
	m.Cell().Observe(func(_, _ Opt[string]) { valueChanges++ })
	var selectionRefreshes int
	m.OnSelectedChange(func(*Item[string]) { selectionRefreshes++ })

	err := m.Registry().SetAll([]Entry[string]{{Value: "b"}, {Value: "c"}})
	if err != nil {
		t.Fatalf("unexpected setall error: %v", err)
	}
	if valueChanges != 0 {
		t.Fatalf("expected value untouched, got %d changes", valueChanges)
	}
	if selectionRefreshes == 0 {
		t.Fatalf("expected display refresh notification")
	}
	item, _ := m.Registry().Lookup("b")
	if m.SelectedItem() != item {
		t.Fatalf("expected selection rebound to the rebuilt item")
	}
}

func TestReplaceWithAbsentValueSelectsFirstItem(t *testing.T) {
	m := New[string]()
	err := m.Registry().SetAll([]Entry[string]{{Value: "a"}, {Value: "b"}})
	if err != nil {
		t.Fatalf("unexpected setall error: %v", err)
	}
	if v, _ := m.Cell().Value().Get(); v != "a" {
		t.Fatalf("expected first item adopted, got %q", v)
	}
}

func TestIncrementalRemoveKeepsCommittedValue(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b", "c")
	_ = m.Cell().Set("b")
	var valueChanges int
	m.Cell().Observe(func(_, _ Opt[string]) { valueChanges++ })

	if found, err := m.Registry().Remove("b"); err != nil || !found {
		t.Fatalf("expected removal, found=%v err=%v", found, err)
	}
	if valueChanges != 0 {
		t.Fatalf("expected committed value untouched by incremental remove, got %d", valueChanges)
	}
	if v, _ := m.Cell().Value().Get(); v != "b" {
		t.Fatalf("expected value still b, got %q", v)
	}
	sel := m.SelectedItem()
	if sel == nil || sel.Value != "b" {
		t.Fatalf("expected selection kept as a transient reference, got %+v", sel)
	}
}

func TestInteractiveSelectWritesCell(t *testing.T) {
	m := newPopulatedMenu(t, "a", "b")
	item, _ := m.Registry().Lookup("b")
	item.Select()
	if v, _ := m.Cell().Value().Get(); v != "b" {
		t.Fatalf("expected interactive select to write the cell, got %q", v)
	}
}
