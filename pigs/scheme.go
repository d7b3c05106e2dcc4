package pigs

import (
	"fmt"
	"iter"
)

// Outcome records, for each pig, the round in which it died (1-based), or 0
// if it survived every round.
type Outcome []int

// Scheme is the feeding schedule behind [MinimumPigs]: every bucket index is
// written in base rounds+1, and digit i is the round in which pig i drinks
// from that bucket, with 0 meaning pig i never drinks it. When the poisoned
// bucket is found, the deaths spell out its digits.
//
// A Scheme is immutable and safe for concurrent use.
type Scheme struct {
	buckets int
	rounds  int
	states  int
	pigs    int
}

// NewScheme builds the scheme for the given inputs, returning the same
// errors as [MinimumPigs].
func NewScheme(buckets, minutesToDie, minutesToTest int) (*Scheme, error) {
	pigs, err := MinimumPigs(buckets, minutesToDie, minutesToTest)
	if err != nil {
		return nil, err
	}

	rounds := minutesToTest / minutesToDie

	return &Scheme{
		buckets: buckets,
		rounds:  rounds,
		states:  States(rounds),
		pigs:    pigs,
	}, nil
}

// Buckets returns the number of buckets covered by s.
func (s *Scheme) Buckets() int { return s.buckets }

// Rounds returns the number of rounds available to s.
func (s *Scheme) Rounds() int { return s.rounds }

// Pigs returns the number of pigs s uses.
func (s *Scheme) Pigs() int { return s.pigs }

// Assignment returns, for each pig, the round in which it drinks from
// bucket, or 0 if it never does.
func (s *Scheme) Assignment(bucket int) ([]int, error) {
	if bucket < 0 || bucket >= s.buckets {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrBucketRange, bucket, s.buckets)
	}

	digits := make([]int, s.pigs)
	for i := range digits {
		digits[i] = bucket % s.states
		bucket /= s.states
	}

	return digits, nil
}

// Outcome returns the deaths observed when poisoned is the bad bucket.
func (s *Scheme) Outcome(poisoned int) (Outcome, error) {
	digits, err := s.Assignment(poisoned)
	if err != nil {
		return nil, err
	}

	return Outcome(digits), nil
}

// Identify returns the bucket that produces o.
func (s *Scheme) Identify(o Outcome) (int, error) {
	if len(o) != s.pigs {
		return 0, fmt.Errorf("%w: %d entries for %d pigs", ErrBadOutcome, len(o), s.pigs)
	}

	var bucket int
	for i := len(o) - 1; i >= 0; i-- {
		round := o[i]
		if round < 0 || round > s.rounds {
			return 0, fmt.Errorf("%w: pig %d died in round %d of %d", ErrBadOutcome, i, round, s.rounds)
		}

		bucket = addSat(mulSat(bucket, s.states), round)
		if bucket >= s.buckets {
			return 0, fmt.Errorf("%w: no bucket below %d matches", ErrBadOutcome, s.buckets)
		}
	}
	if bucket >= s.buckets {
		return 0, fmt.Errorf("%w: no bucket below %d matches", ErrBadOutcome, s.buckets)
	}

	return bucket, nil
}

// Feeds returns the buckets pig drinks from in round (1-based), in ascending
// order.
func (s *Scheme) Feeds(pig, round int) (iter.Seq[int], error) {
	if pig < 0 || pig >= s.pigs {
		return nil, fmt.Errorf("%w: pig %d not in [0, %d)", ErrInvalidArgument, pig, s.pigs)
	}
	if round < 1 || round > s.rounds {
		return nil, fmt.Errorf("%w: round %d not in [1, %d]", ErrInvalidArgument, round, s.rounds)
	}

	stride := 1
	for range pig {
		stride = mulSat(stride, s.states)
	}
	block := mulSat(stride, s.states)

	return func(yield func(int) bool) {
		for base := mulSat(round, stride); base < s.buckets; base = addSat(base, block) {
			for lo := 0; lo < stride && lo < s.buckets-base; lo++ {
				if !yield(base + lo) {
					return
				}
			}
		}
	}, nil
}
