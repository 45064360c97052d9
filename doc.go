// Package pipeloop finds the cell of a closed pipe loop that lies farthest
// from its start, by walking the loop from both ends at once and noting
// where the walkers meet.
//
// What is pipeloop?
//
//	A small module built around one concurrency pattern: a supervisor and
//	one goroutine per walking direction advancing in strict lock-step
//	through single-slot rendezvous points.
//
//	    .....
//	    .S-7.      start S; the walkers leave south and east,
//	    .|.|.      take one step per round, and meet at J
//	    .L-J.      after 4 steps.
//	    .....
//
// Under the hood, everything is organized under four packages:
//
//	pipegrid/   — immutable grid of pipe symbols, connector rules, start discovery
//	rendezvous/ — Slot: capacity-one hand-off with sync.Cond blocking
//	walker/     — one direction's traversal state machine
//	supervisor/ — spawns, drives and joins the walkers; detects the midpoint
//
// The pipeloop command (cmd/pipeloop) reads a grid file and prints the answer:
//
//	go run ./cmd/pipeloop inputs/day10.input --verify
package pipeloop
