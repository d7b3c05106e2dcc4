package pigs

import (
	"errors"
	"fmt"
	"math"

	"go.dw1.io/poorpigs/cast"
	"go.dw1.io/safemath"
)

// Impossible is returned by [MinimumPigs] when the window is shorter than a
// single round.
const Impossible = math.MaxInt

// MinimumPigs returns the smallest number of pigs that can identify the
// poisoned bucket among buckets within minutesToTest minutes, given that a
// pig dies minutesToDie minutes after drinking poison.
//
// Zero or one bucket needs no pigs. If minutesToTest < minutesToDie it
// returns [Impossible] and an error wrapping [ErrInfeasible]. Negative inputs
// and a non-positive minutesToDie yield an error wrapping
// [ErrInvalidArgument].
func MinimumPigs(buckets, minutesToDie, minutesToTest int) (int, error) {
	if err := validate(buckets, minutesToDie, minutesToTest); err != nil {
		return 0, err
	}

	if buckets <= 1 {
		return 0, nil
	}

	rounds := minutesToTest / minutesToDie
	if rounds == 0 {
		return Impossible, fmt.Errorf("%w: window of %d minutes, %d minutes to die",
			ErrInfeasible, minutesToTest, minutesToDie)
	}

	return pigsFor(buckets, States(rounds)), nil
}

// MustMinimumPigs is like [MinimumPigs] but panics on invalid arguments. An
// infeasible window still yields [Impossible].
func MustMinimumPigs(buckets, minutesToDie, minutesToTest int) int {
	n, err := MinimumPigs(buckets, minutesToDie, minutesToTest)
	if err != nil && !errors.Is(err, ErrInfeasible) {
		panic(err)
	}

	return n
}

// MinimumPigsAny is like [MinimumPigs] but accepts loosely typed arguments,
// such as numeric strings or whole floats, converting each with [cast.To].
func MinimumPigsAny(buckets, minutesToDie, minutesToTest any) (int, error) {
	b, err := toInt("buckets", buckets)
	if err != nil {
		return 0, err
	}

	d, err := toInt("minutesToDie", minutesToDie)
	if err != nil {
		return 0, err
	}

	t, err := toInt("minutesToTest", minutesToTest)
	if err != nil {
		return 0, err
	}

	return MinimumPigs(b, d, t)
}

// MinimumPigsOf is like [MinimumPigs] for any integer type. Values that do
// not fit in an int are reported as [ErrInvalidArgument].
func MinimumPigsOf[T cast.Integer](buckets, minutesToDie, minutesToTest T) (int, error) {
	return MinimumPigsAny(buckets, minutesToDie, minutesToTest)
}

// Rounds returns how many sequential rounds of minutesToDie fit in
// minutesToTest.
func Rounds(minutesToDie, minutesToTest int) (int, error) {
	if err := validate(0, minutesToDie, minutesToTest); err != nil {
		return 0, err
	}

	return minutesToTest / minutesToDie, nil
}

// States returns the number of distinguishable end states of one pig over
// rounds rounds, saturating at math.MaxInt. Negative rounds yield 0.
func States(rounds int) int {
	if rounds < 0 {
		return 0
	}

	return addSat(rounds, 1)
}

// Capacity returns how many buckets pigs pigs can tell apart over rounds
// rounds, that is (rounds+1)^pigs, saturating at math.MaxInt. Negative
// arguments yield 0.
func Capacity(pigs, rounds int) int {
	if pigs < 0 || rounds < 0 {
		return 0
	}

	states := States(rounds)
	if states <= 1 {
		return 1
	}

	ways := 1
	for range pigs {
		if ways == math.MaxInt {
			break
		}
		ways = mulSat(ways, states)
	}

	return ways
}

// pigsFor returns the smallest p with states^p >= buckets. states must be at
// least 2.
func pigsFor(buckets, states int) int {
	var pigs int
	for ways := 1; ways < buckets; pigs++ {
		ways = mulSat(ways, states)
	}

	return pigs
}

func validate(buckets, minutesToDie, minutesToTest int) error {
	switch {
	case buckets < 0:
		return fmt.Errorf("%w: buckets %d is negative", ErrInvalidArgument, buckets)
	case minutesToDie <= 0:
		return fmt.Errorf("%w: minutesToDie %d is not positive", ErrInvalidArgument, minutesToDie)
	case minutesToTest < 0:
		return fmt.Errorf("%w: minutesToTest %d is negative", ErrInvalidArgument, minutesToTest)
	}

	return nil
}

func toInt(name string, v any) (int, error) {
	n, err := cast.To[int](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
	}

	return n, nil
}

// mulSat returns a*b for non-negative a and b, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if v, err := safemath.Mul(a, b); err == nil {
		return v
	}

	return math.MaxInt
}

// addSat returns a+b for non-negative a and b, saturating at math.MaxInt.
func addSat(a, b int) int {
	if v, err := safemath.Add(a, b); err == nil {
		return v
	}

	return math.MaxInt
}
