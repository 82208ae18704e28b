package service

import "math/rand/v2"

// Random is the source of uniform picks for the athlete pool
type Random interface {
	IntN(n int) int
}

type defaultRandom struct{}

func (defaultRandom) IntN(n int) int {
	return rand.IntN(n)
}
