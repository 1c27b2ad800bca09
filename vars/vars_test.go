package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if s := FirstNonZero("", "flag", "config"); s != "flag" {
		t.Fatalf("got %q", s)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
	if n := FirstNonZero[int](); n != 0 {
		t.Fatalf("got %d", n)
	}
}
