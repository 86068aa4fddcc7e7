package core

import (
	"testing"

	"contact-editor/ui/editor/models"
)

// TestContactStore_AddAndGet tests adding contacts and ID assignment
func TestContactStore_AddAndGet(t *testing.T) {
	store := NewContactStore()

	first := store.Add(models.Contact{Name: "Obama", Group: "Work"})
	second := store.Add(models.Contact{Name: "Biden", Group: "Work"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("Add must assign IDs")
	}
	if first.ID == second.ID {
		t.Fatalf("IDs must be unique, both are %q", first.ID)
	}

	got, ok := store.Get(first.ID)
	if !ok {
		t.Fatalf("Get(%q) not found", first.ID)
	}
	if got.Name != "Obama" {
		t.Errorf("Get(%q).Name = %q, expected %q", first.ID, got.Name, "Obama")
	}

	if store.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", store.Len())
	}
}

// TestContactStore_Update tests replacing a contact by ID
func TestContactStore_Update(t *testing.T) {
	store := NewContactStore()
	c := store.Add(models.Contact{Name: "Obama", Group: "Work"})

	c.Name = "Biden"
	if err := store.Update(c); err != nil {
		t.Fatalf("Update unexpected error: %v", err)
	}

	got, _ := store.Get(c.ID)
	if got.Name != "Biden" {
		t.Errorf("updated name = %q, expected %q", got.Name, "Biden")
	}

	if err := store.Update(models.Contact{ID: "c-999", Name: "Ghost"}); err == nil {
		t.Error("Update with unknown ID expected error, got nil")
	}
}

// TestContactStore_Delete tests removal and index consistency
func TestContactStore_Delete(t *testing.T) {
	store := NewContactStore()
	a := store.Add(models.Contact{Name: "Obama", Group: "Work"})
	b := store.Add(models.Contact{Name: "Biden", Group: "Work"})
	c := store.Add(models.Contact{Name: "Harris", Group: "Work"})

	if err := store.Delete(b.ID); err != nil {
		t.Fatalf("Delete unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", store.Len())
	}
	if _, ok := store.Get(b.ID); ok {
		t.Error("deleted contact must not be found")
	}

	// Remaining contacts keep their order and stay reachable by ID.
	got, ok := store.At(1)
	if !ok || got.ID != c.ID {
		t.Errorf("At(1) = %+v, expected %s", got, c.ID)
	}
	if gotA, ok := store.Get(a.ID); !ok || gotA.Name != "Obama" {
		t.Errorf("Get(%q) = %+v, expected Obama", a.ID, gotA)
	}

	if err := store.Delete("c-999"); err == nil {
		t.Error("Delete with unknown ID expected error, got nil")
	}
}

// TestContactStore_List tests that List returns an independent copy
func TestContactStore_List(t *testing.T) {
	store := NewContactStore()
	store.Add(models.Contact{Name: "Obama", Group: "Work"})

	list := store.List()
	list[0].Name = "mutated"

	got, _ := store.At(0)
	if got.Name != "Obama" {
		t.Error("mutating the returned list must not affect the store")
	}
}
