package loan

import "testing"

func TestInferTier(t *testing.T) {
	cases := []struct {
		count int
		want  Tier
	}{
		{1, TierLow},
		{12, TierLow},
		{13, TierMedium},
		{24, TierMedium},
		{25, TierHigh},
		{60, TierHigh},
	}
	for _, c := range cases {
		if got := InferTier(c.count); got != c.want {
			t.Errorf("InferTier(%d) = %s, want %s", c.count, got, c.want)
		}
	}
}

func TestInterestFor_RoundsToCents(t *testing.T) {
	// 0.05 * 1000.33 = 50.0165 -> 50.02
	if got := InterestFor(1000.33, TierLow); got != 50.02 {
		t.Fatalf("InterestFor = %v, want 50.02", got)
	}
	if got := InterestFor(2_000_000, TierMedium); got != 200_000 {
		t.Fatalf("InterestFor = %v, want 200000", got)
	}
	if got := InterestFor(1_000_000, TierHigh); got != 150_000 {
		t.Fatalf("InterestFor = %v, want 150000", got)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []State{StateCancelled, StateCompleted, StateRefinanced}
	for _, to := range allowed {
		if !CanTransition(StateActive, to) {
			t.Errorf("ACTIVE -> %s should be allowed", to)
		}
	}
	// Terminal states are dead ends.
	for _, from := range []State{StateCancelled, StateCompleted, StateRefinanced} {
		for _, to := range []State{StateActive, StateCancelled, StateCompleted, StateRefinanced} {
			if CanTransition(from, to) {
				t.Errorf("%s -> %s should be rejected", from, to)
			}
		}
	}
	if CanTransition(StateActive, StateActive) {
		t.Error("ACTIVE -> ACTIVE should be rejected")
	}
}
