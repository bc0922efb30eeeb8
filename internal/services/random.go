package services

import (
	"math/rand"
)

// RandomSource is the single source of randomness behind scoring jitter,
// random slot draws and cold-start shuffles. Tests substitute a
// fixed-sequence implementation to make selection deterministic.
type RandomSource interface {
    Float64() float64
    Intn(n int) int
    Shuffle(n int, swap func(i, j int))
}

type mathRandSource struct{}

func NewRandomSource() RandomSource {
    return mathRandSource{}
}

func (mathRandSource) Float64() float64 {
    return rand.Float64()
}

func (mathRandSource) Intn(n int) int {
    return rand.Intn(n)
}

func (mathRandSource) Shuffle(n int, swap func(i, j int)) {
    rand.Shuffle(n, swap)
}
