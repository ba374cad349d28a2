package passage

import "testing"

func TestSplitTrimsAndDropsBlanks(t *testing.T) {
	got := Split("  first response \n\n second \n\t\nthird\n")
	want := []string{"first response", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d passages, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("passage %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Fatalf("expected no passages for empty input, got %v", got)
	}
	if got := Split("\n\n\n"); len(got) != 0 {
		t.Fatalf("expected no passages for blank input, got %v", got)
	}
}

func TestSplitHandlesCarriageReturns(t *testing.T) {
	got := Split("alpha\r\nbeta\r\n")
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Fatalf("unexpected passages: %v", got)
	}
}
