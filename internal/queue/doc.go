// Package queue provides the slice-backed positional store beneath the
// public queue. The store owns index-addressed mechanics only: appending,
// overwriting, shift-down removal and ordered scans. Slot classification and
// cursor policy are layered on top by the root package.
//
// A store is exclusively owned by a single queue instance and performs no
// locking.
package queue
