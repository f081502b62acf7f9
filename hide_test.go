package pokelinks

import "testing"

func TestHideUnhideItemIsIdentity(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	before := snapshotItemTable(m)
	if !m.HideItem(NewType("Water")) {
		t.Fatalf("expected HideItem(Water) to succeed")
	}
	if m.HasItem(NewType("Water")) {
		t.Errorf("Water should no longer be visible once hidden")
	}
	m.PopHiddenItem()
	after := snapshotItemTable(m)
	if !itemTablesEqual(before, after) {
		t.Errorf("hide/unhide did not restore the item table")
	}
}

func TestHideAllItemsExceptAndReset(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	before := snapshotLinks(m)
	beforeItems := snapshotItemTable(m)

	m.HideAllItemsExcept(map[Type]bool{NewType("Water"): true})
	m.HideAllOptionsExcept(map[Type]bool{NewType("Water"): true})

	if m.NumItems() != 1 {
		t.Errorf("expected 1 remaining item, got %d", m.NumItems())
	}
	if m.NumOptions() != 1 {
		t.Errorf("expected 1 remaining option, got %d", m.NumOptions())
	}

	solutions, _ := m.ExactCoverages(6)
	if len(solutions) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(solutions))
	}
	if solutions[0].Rank != 3 {
		t.Errorf("expected rank 3 (Water resists Water at half), got %d", solutions[0].Rank)
	}
	wantSet(t, solutions[0], "Water")

	overlapping, _ := m.OverlappingCoverages(6)
	if len(overlapping) != 1 || overlapping[0].Rank != 3 {
		t.Errorf("expected the same single solution under overlapping coverage")
	}

	m.ResetItems()
	m.ResetOptions()

	if !linksEqual(before, snapshotLinks(m)) {
		t.Errorf("matrix links not byte-identical after reset")
	}
	if !itemTablesEqual(beforeItems, snapshotItemTable(m)) {
		t.Errorf("item table not byte-identical after reset")
	}
}

func TestHideItemLeavesSameNameOptionVisible(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	electric := NewType("Electric")
	if !m.HideItem(electric) {
		t.Fatalf("expected HideItem(Electric) to succeed")
	}
	if m.HasItem(electric) {
		t.Errorf("item Electric should be hidden")
	}
	if !m.HasOption(electric) {
		t.Errorf("option Electric should remain visible: items and options are independent namespaces")
	}
}

func TestHideOptionsReportingBogusName(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	bogus := NewType("Bogus-Dark")
	ok, failed := m.HideOptionsReporting([]Type{NewType("Ghost"), bogus})
	if ok {
		t.Errorf("expected HideOptionsReporting to report failure")
	}
	if len(failed) != 1 || failed[0] != bogus {
		t.Errorf("expected only the bogus name reported as failed, got %v", failed)
	}
	if m.HasOption(NewType("Ghost")) {
		t.Errorf("Ghost should have been hidden despite the batch failure")
	}
}

func TestPopHiddenItemOnEmptyStackPanics(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected PopHiddenItem to panic on an empty stack")
		}
	}()
	m.PopHiddenItem()
}

func snapshotItemTable(m *Matrix) []itemHeader {
	cp := make([]itemHeader, len(m.itemTable))
	copy(cp, m.itemTable)
	return cp
}

func itemTablesEqual(a, b []itemHeader) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
