// Package search implements the two reachability searches the generators
// are built on: a plain topology-only breadth-first search (state cover)
// and a guard-aware search that replays the real processing functions over
// cloned memory snapshots (data-path discovery).
package search
