package engine

import "fmt"

// Rand is the randomness source used to shake the dice.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Perm(n int) []int
	IntN(n int) int
}

// Shake permutes the dice and draws exactly one face from each die.
// The returned letters are in placement order: letters[i] belongs at (i%cols, i/cols).
func Shake(dice []Die, rng Rand) ([]string, error) {
	letters, _, err := ShakeWithOrder(dice, rng)
	return letters, err
}

// ShakeWithOrder is Shake but also reports which die landed on each position
func ShakeWithOrder(dice []Die, rng Rand) (letters []string, order []int, err error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("shake: random source is required")
	}
	order = rng.Perm(len(dice))
	letters = make([]string, len(dice))
	for i, dieIdx := range order {
		die := dice[dieIdx]
		if len(die) == 0 {
			return nil, nil, fmt.Errorf("shake: die %d has no faces", dieIdx)
		}
		// fresh draw per die
		letters[i] = die[rng.IntN(len(die))]
	}
	return letters, order, nil
}
