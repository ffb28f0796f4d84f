/*
Package session provides safe concurrent access to durable machine sessions.

The engine core is deliberately unsynchronized; this package is the
caller-side serialization layer. A Manager pairs one shared transition table
with a SnapshotStore and guarantees that concurrent operations on the same
session ID are applied one at a time, each batch persisted before the next
begins. Locks are reference counted and collected as soon as a session goes
idle, so a Manager can front an unbounded session space.
*/
package session
