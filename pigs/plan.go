package pigs

import (
	"errors"
	"fmt"

	"go.dw1.io/poorpigs/json"
)

// Plan summarizes one [MinimumPigs] calculation.
//
// When Feasible is false, Pigs is [Impossible] and Capacity is 0.
type Plan struct {
	Buckets       int  `json:"buckets"`
	MinutesToDie  int  `json:"minutesToDie"`
	MinutesToTest int  `json:"minutesToTest"`
	Rounds        int  `json:"rounds"`
	States        int  `json:"states"`
	Pigs          int  `json:"pigs"`
	Capacity      int  `json:"capacity"`
	Feasible      bool `json:"feasible"`
}

// NewPlan computes the plan for the given inputs. An infeasible window is
// reported through Plan.Feasible rather than an error; only invalid
// arguments fail.
func NewPlan(buckets, minutesToDie, minutesToTest int) (Plan, error) {
	pigs, err := MinimumPigs(buckets, minutesToDie, minutesToTest)
	if err != nil && !errors.Is(err, ErrInfeasible) {
		return Plan{}, err
	}

	rounds := minutesToTest / minutesToDie
	p := Plan{
		Buckets:       buckets,
		MinutesToDie:  minutesToDie,
		MinutesToTest: minutesToTest,
		Rounds:        rounds,
		States:        States(rounds),
		Pigs:          pigs,
		Feasible:      err == nil,
	}
	if p.Feasible {
		p.Capacity = Capacity(pigs, rounds)
	}

	return p, nil
}

// String returns a one-line summary of p.
func (p Plan) String() string {
	head := fmt.Sprintf("%d buckets, %dm to die, %dm window", p.Buckets, p.MinutesToDie, p.MinutesToTest)
	if !p.Feasible {
		return head + ": infeasible"
	}

	return fmt.Sprintf("%s: %d rounds, %d pigs (capacity %d)", head, p.Rounds, p.Pigs, p.Capacity)
}

type plan Plan

// MarshalJSON implements [encoding/json.Marshaler].
func (p Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(plan(p))
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (p *Plan) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("pigs: UnmarshalJSON on nil *Plan")
	}

	var v plan
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Plan(v)

	return nil
}
