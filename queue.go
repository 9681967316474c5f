// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// eventQueue is an unbounded FIFO of events in flight during an activation.
// It is not safe for concurrent use.
//
type eventQueue struct {
	events []Event
	head   int
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) pop() (Event, bool) {
	if q.head == len(q.events) {
		return Event{}, false
	}
	e := q.events[q.head]
	q.events[q.head] = Event{}
	q.head++
	if q.head == len(q.events) {
		// drained: reuse the backing array.
		q.events = q.events[:0]
		q.head = 0
	}
	return e, true
}

func (q *eventQueue) len() int { return len(q.events) - q.head }
