// Package pool runs batches of independent attempts in parallel. Its main
// consumer is the try-decrypt-every-blob scan, where each attempt either
// yields a payload or a uniform failure and at most one attempt is expected
// to succeed.
package pool

import (
	"runtime"
)

// scanAlone evaluates f over the whole index space on the current goroutine.
func scanAlone(f func(int) interface{}, count int) []interface{} {
	results := make([]interface{}, count)
	for i := range results {
		results[i] = f(i)
	}
	return results
}

// command asks a latent worker to evaluate f at one index and report back.
type command struct {
	i int
	f func(int) interface{}
	// results receives the value at index i
	results []interface{}
}

func worker(commands <-chan command, done chan<- struct{}) {
	for c := range commands {
		c.results[c.i] = c.f(c.i)
		done <- struct{}{}
	}
}

// Pool is a set of latent workers shared across scans, avoiding a goroutine
// spawn per attempt. A single scan runs at a time per pool.
//
// Functions taking a *Pool accept a nil receiver and then do the equivalent
// work on the current goroutine.
type Pool struct {
	commands    chan command
	done        chan struct{}
	workerCount int
}

// NewPool creates a pool with count workers, or one per CPU if count <= 0.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		commands:    make(chan command),
		done:        make(chan struct{}),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.commands, p.done)
	}
	return p
}

// TearDown stops the workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	if p != nil {
		close(p.commands)
	}
}

// Scan evaluates f at every index in [0, count) and returns all results.
// f must be safe for concurrent calls; a failed attempt returns nil.
func (p *Pool) Scan(count int, f func(int) interface{}) []interface{} {
	if p == nil {
		return scanAlone(f, count)
	}
	results := make([]interface{}, count)
	if count == 0 {
		return results
	}

	go func() {
		for i := 0; i < count; i++ {
			p.commands <- command{i: i, f: f, results: results}
		}
	}()
	// every command reports exactly once; consuming all of them leaves no
	// worker blocked on its final send
	for i := 0; i < count; i++ {
		<-p.done
	}
	return results
}
