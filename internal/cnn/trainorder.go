package cnn

import "github.com/gridnet-ml/gridnet/internal/random"

// trainOrder is the ordered sequence of sample indices controlling the
// stochastic update order. It is created once per training session and
// shuffled in place at the start of every epoch.
type trainOrder []int

// newTrainOrder creates an order list holding 0..count-1 ascending.
func newTrainOrder(count int) trainOrder {
	order := make(trainOrder, count)
	for i := range order {
		order[i] = i
	}
	return order
}

// shuffle permutes the order list in place using the given source. Each
// position is swapped with a uniformly chosen position, so the list stays a
// permutation of 0..len-1.
func (o trainOrder) shuffle(src random.Source) {
	for i := range o {
		r := src.IntN(len(o))
		o[i], o[r] = o[r], o[i]
	}
}
