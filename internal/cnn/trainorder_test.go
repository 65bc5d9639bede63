package cnn

import (
	"testing"

	"github.com/gridnet-ml/gridnet/internal/random"
)

func TestNewTrainOrder(t *testing.T) {
	order := newTrainOrder(5)
	if len(order) != 5 {
		t.Fatalf("expected length 5, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("expected order[%d] = %d, got %d", i, i, v)
		}
	}
}

func TestTrainOrderShuffle_IsPermutation(t *testing.T) {
	order := newTrainOrder(16)
	order.shuffle(random.New(7))

	seen := make(map[int]bool, len(order))
	for _, v := range order {
		if v < 0 || v >= len(order) {
			t.Fatalf("index %d out of range", v)
		}
		if seen[v] {
			t.Fatalf("index %d appears twice", v)
		}
		seen[v] = true
	}
	if len(seen) != len(order) {
		t.Fatalf("expected %d distinct indices, got %d", len(order), len(seen))
	}
}

func TestTrainOrderShuffle_Deterministic(t *testing.T) {
	a := newTrainOrder(10)
	b := newTrainOrder(10)
	a.shuffle(random.New(42))
	b.shuffle(random.New(42))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orders diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}
