package notify

import "testing"

func TestStore_ListIsCopy(t *testing.T) {
	s := NewStore(Seed())
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	list := s.List()
	list[0].Text = "changed"
	if s.List()[0].Text != "Tu pedido está siendo procesado." {
		t.Fatalf("List should return a copy")
	}
}

func TestStore_SeedIsolation(t *testing.T) {
	seed := Seed()
	s := NewStore(seed)
	seed[1].From = "changed"
	if got := s.List()[1].From; got != "John Doe" {
		t.Fatalf("From = %q, want John Doe", got)
	}
}

func TestStore_NilSafe(t *testing.T) {
	var s *Store
	if s.Len() != 0 || s.List() != nil {
		t.Fatalf("nil store should be empty")
	}
}
