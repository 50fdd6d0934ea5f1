package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("generates version 7 ids", func(t *testing.T) {
		id := New()
		if !IsValid(id) {
			t.Fatalf("expected valid uuid, got %q", id)
		}
		if id[14] != '7' {
			t.Errorf("expected version nibble 7, got %c in %s", id[14], id)
		}
	})

	t.Run("ids are unique and ordered", func(t *testing.T) {
		prev := New()
		for i := 0; i < 100; i++ {
			next := New()
			if next == prev {
				t.Fatalf("duplicate id %s", next)
			}
			prev = next
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("normalizes case", func(t *testing.T) {
		id := New()
		got, err := Parse(strings.ToUpper(id))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != id {
			t.Errorf("expected %s, got %s", id, got)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := Parse("not-a-uuid"); err == nil {
			t.Error("expected error")
		}
		if IsValid("123") {
			t.Error("expected 123 to be invalid")
		}
	})
}
