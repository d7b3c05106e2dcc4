// Package pigs answers the "poor pigs" question: how many test subjects are
// needed to find the single poisoned bucket among n, when a subject dies a
// fixed number of minutes after drinking poison and the whole search has to
// fit in a fixed window.
//
// A subject that can take part in r sequential rounds ends in one of r+1
// observable states (died in round 1..r, or survived). With p subjects there
// are (r+1)^p joint outcomes, so the answer is the smallest p for which that
// reaches n. [MinimumPigs] computes it; [Scheme] builds the matching feeding
// schedule and decodes observed deaths back to a bucket; [Plan] summarizes a
// calculation in a JSON friendly form.
//
// All functions are pure and safe for concurrent use.
package pigs
