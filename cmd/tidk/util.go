package main

import "runtime"

// numCPU sizes the default worker pool, per spec.md §5's "worker pool of
// size equal to logical CPUs" default.
func numCPU() int {
	return runtime.NumCPU()
}
