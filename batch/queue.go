// Package batch runs a list of song queries through the pipeline
// sequentially, isolating per-query failures and reporting progress
// through a caller-supplied callback.
package batch

import "strings"

// Queue is an ordered queue of queries with duplicate suppression.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{seen: make(map[string]bool)}
}

// Add enqueues a query if it is non-blank and hasn't been seen before.
func (q *Queue) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" || q.seen[query] {
		return
	}
	q.seen[query] = true
	q.items = append(q.items, query)
}

// HasNext returns true if there are unprocessed queries.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed query and advances the pointer.
func (q *Queue) Next() string {
	query := q.items[q.idx]
	q.idx++
	return query
}

// Len returns the number of unique queries enqueued.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns all enqueued queries in input order.
func (q *Queue) All() []string {
	return q.items
}
