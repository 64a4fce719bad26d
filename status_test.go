package retry

import (
	"testing"
	"time"
)

func TestStatusZeroValueIsInitial(t *testing.T) {
	var s Status
	if s.Iterations != 0 {
		t.Fatalf("Iterations = %d, want 0", s.Iterations)
	}
	if s.Previous.Continue() {
		t.Fatal("initial status carries a retry decision, want none")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		want string
	}{
		{"initial", Status{}, "iteration 0: initial"},
		{"retrying", Status{Iterations: 3, Previous: After(800 * time.Millisecond)}, "iteration 3: retry in 800ms"},
		{"stopped", Status{Iterations: 6, Previous: Stop()}, "iteration 6: stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
