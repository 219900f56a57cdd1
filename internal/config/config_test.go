package config

import "testing"

func TestPort(t *testing.T) {
	t.Setenv("TEST_PORT", "9090")
	p, err := Port("TEST_PORT", "8080")
	if err != nil {
		t.Fatalf("Port failed: %v", err)
	}
	if p != "9090" {
		t.Fatalf("expected 9090, got %s", p)
	}

	t.Setenv("TEST_PORT", "not-a-port")
	if _, err := Port("TEST_PORT", "8080"); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestList(t *testing.T) {
	got := List(" a, b ,, c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected list: %v", got)
	}
	if got := List(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	if !Bool("TEST_BOOL", false) {
		t.Fatal("expected true for yes")
	}
	t.Setenv("TEST_BOOL", "off")
	if Bool("TEST_BOOL", true) {
		t.Fatal("expected false for off")
	}
}

func TestLoadRejectsBadDiscount(t *testing.T) {
	t.Setenv("RECURRING_DISCOUNT_PERCENT", "150")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for discount >= 100")
	}
}
