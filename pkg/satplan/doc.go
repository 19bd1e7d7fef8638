// Package satplan implements classical STRIPS planning by reduction to
// propositional satisfiability (SATPLAN).
//
// Given a planning domain — initial-state atoms, goal atoms, and
// parameterised action schemas with preconditions and effects — and a time
// horizon H, the package:
//
//  1. grounds every action schema against the problem's constants (ground.go),
//  2. builds the Herbrand base and an append-only variable table that gives
//     every (atom, t) and (ground action, t) pair a stable integer ID
//     (herbrand.go, variable.go),
//  3. emits a CNF capturing "a valid plan of length <= H exists"
//     (cnf.go),
//  4. runs a DPLL search over that CNF, either the recursive reference
//     variant or an iterative variant with a frequency heuristic and
//     chronological backtracking (dpll_recursive.go, dpll_iterative.go), and
//  5. extracts the ordered sequence of ground actions from a satisfying
//     model (plan.go).
//
// The package is single-threaded and synchronous: no goroutines, no
// cancellation hooks of any kind — Plan runs a horizon loop to completion
// or exhaustion and cannot be interrupted mid-search. All state for one
// planning run — Herbrand base, variable table, clause set, model —
// belongs to that run alone.
package satplan
