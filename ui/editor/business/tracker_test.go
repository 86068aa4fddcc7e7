package business

import (
	"testing"

	"contact-editor/ui/editor/models"
)

func snapshotWithName(name string) models.FormSnapshot {
	return models.FormSnapshot{
		models.FieldName:  name,
		models.FieldEmail: "",
		models.FieldPhone: "",
		models.FieldGroup: models.DefaultGroup,
	}
}

// TestComputeActionStates_Scenarios tests button availability for typical
// load/edit sequences.
func TestComputeActionStates_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(tr *FormTracker)
		expected ActionStates
	}{
		{
			name: "Existing contact loaded, no edits",
			setup: func(tr *FormTracker) {
				tr.LoadExisting("c-001", snapshotWithName("Obama"))
			},
			expected: ActionStates{SaveEnabled: false, RevertEnabled: false, DeleteEnabled: true},
		},
		{
			name: "Existing contact, valid edit",
			setup: func(tr *FormTracker) {
				tr.LoadExisting("c-001", snapshotWithName("Obama"))
				tr.OnFieldChanged(models.FieldName, "Biden", true)
			},
			expected: ActionStates{SaveEnabled: true, RevertEnabled: true, DeleteEnabled: true},
		},
		{
			name: "Existing contact, invalid edit",
			setup: func(tr *FormTracker) {
				tr.LoadExisting("c-001", snapshotWithName("Obama"))
				tr.OnFieldChanged(models.FieldName, "Biden", false)
			},
			expected: ActionStates{SaveEnabled: false, RevertEnabled: true, DeleteEnabled: true},
		},
		{
			name: "New contact, no edits",
			setup: func(tr *FormTracker) {
				tr.LoadNew(models.EmptySnapshot())
			},
			expected: ActionStates{SaveEnabled: false, RevertEnabled: false, DeleteEnabled: false},
		},
		{
			name: "New contact, valid edit",
			setup: func(tr *FormTracker) {
				tr.LoadNew(models.EmptySnapshot())
				tr.OnFieldChanged(models.FieldName, "Obama", true)
			},
			expected: ActionStates{SaveEnabled: true, RevertEnabled: true, DeleteEnabled: false},
		},
		{
			name: "Nothing selected",
			setup: func(tr *FormTracker) {
				// Fresh tracker, nothing loaded
			},
			expected: ActionStates{SaveEnabled: false, RevertEnabled: false, DeleteEnabled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewFormTracker()
			tt.setup(tracker)

			got := tracker.ComputeActionStates()
			if got != tt.expected {
				t.Errorf("ComputeActionStates() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

// TestComputeActionStates_Idempotent verifies that two calls without
// intervening mutation return identical results.
func TestComputeActionStates_Idempotent(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))
	tracker.OnFieldChanged(models.FieldName, "Biden", true)

	first := tracker.ComputeActionStates()
	second := tracker.ComputeActionStates()

	if first != second {
		t.Errorf("ComputeActionStates() not idempotent: first %+v, second %+v", first, second)
	}
}

// TestIsDirty_SnapshotComparison verifies that dirty is derived from
// snapshot-vs-current comparison, not from edit events.
func TestIsDirty_SnapshotComparison(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))

	if tracker.IsDirty() {
		t.Error("fresh load must not be dirty")
	}

	tracker.OnFieldChanged(models.FieldName, "Biden", true)
	if !tracker.IsDirty() {
		t.Error("changed field must make tracker dirty")
	}

	// Changing the value back to the snapshot value clears dirty even
	// though two change events happened.
	tracker.OnFieldChanged(models.FieldName, "Obama", true)
	if tracker.IsDirty() {
		t.Error("value restored to snapshot must not be dirty")
	}
}

// TestOnSaveSucceeded tests that a successful save clears dirty while
// selection and validity stay unchanged.
func TestOnSaveSucceeded(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))
	tracker.OnFieldChanged(models.FieldName, "Biden", true)

	before := tracker.ComputeActionStates()
	if !before.SaveEnabled {
		t.Fatal("save must be enabled before OnSaveSucceeded")
	}

	tracker.OnSaveSucceeded()

	if tracker.IsDirty() {
		t.Error("tracker must not be dirty after OnSaveSucceeded")
	}
	if !tracker.IsValid() {
		t.Error("validity must be unchanged by OnSaveSucceeded")
	}

	after := tracker.ComputeActionStates()
	expected := ActionStates{SaveEnabled: false, RevertEnabled: false, DeleteEnabled: true}
	if after != expected {
		t.Errorf("ComputeActionStates() after save = %+v, expected %+v", after, expected)
	}

	// The saved values become the new snapshot: editing back to the
	// original value is now a change.
	tracker.OnFieldChanged(models.FieldName, "Obama", true)
	if !tracker.IsDirty() {
		t.Error("editing after save must compare against the new snapshot")
	}
}

// TestOnRevertRequested tests that revert returns the last snapshot and
// clears dirty.
func TestOnRevertRequested(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))
	tracker.OnFieldChanged(models.FieldName, "Biden", false)

	snap := tracker.OnRevertRequested()

	if snap[models.FieldName] != "Obama" {
		t.Errorf("reverted snapshot name = %q, expected %q", snap[models.FieldName], "Obama")
	}
	if tracker.IsDirty() {
		t.Error("tracker must not be dirty after revert")
	}
	if !tracker.IsValid() {
		t.Error("snapshot values are valid by construction, revert must restore validity")
	}

	// Mutating the returned snapshot must not affect tracker state.
	snap[models.FieldName] = "mutated"
	if tracker.IsDirty() {
		t.Error("returned snapshot must be a copy")
	}
}

// TestLoadExisting_ReplacesSnapshot verifies that loading another contact
// replaces the snapshot wholesale and clears previous edits.
func TestLoadExisting_ReplacesSnapshot(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))
	tracker.OnFieldChanged(models.FieldName, "Biden", false)

	tracker.LoadExisting("c-002", snapshotWithName("Harris"))

	if tracker.IsDirty() {
		t.Error("load must clear dirty")
	}
	if !tracker.IsValid() {
		t.Error("load must reset validity")
	}

	sel := tracker.Selection()
	if sel.Kind != EditingExisting || sel.EntityID != "c-002" {
		t.Errorf("Selection() = %+v, expected EditingExisting(c-002)", sel)
	}
}

// TestReset tests returning the tracker to the NoneSelected state.
func TestReset(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))
	tracker.OnFieldChanged(models.FieldName, "Biden", true)

	tracker.Reset()

	if tracker.Selection().Kind != NoneSelected {
		t.Errorf("Selection().Kind = %v, expected NoneSelected", tracker.Selection().Kind)
	}
	got := tracker.ComputeActionStates()
	expected := ActionStates{}
	if got != expected {
		t.Errorf("ComputeActionStates() after reset = %+v, expected all disabled", got)
	}
}

// TestValues_ReturnsCopy verifies that Values returns an independent copy
// of the current field values.
func TestValues_ReturnsCopy(t *testing.T) {
	tracker := NewFormTracker()
	tracker.LoadExisting("c-001", snapshotWithName("Obama"))

	values := tracker.Values()
	values[models.FieldName] = "mutated"

	if tracker.IsDirty() {
		t.Error("mutating the returned values must not affect tracker state")
	}
}
