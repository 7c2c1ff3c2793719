/*
Package runner executes a machine step by step against live memory.

It implements the ordered-trial dispatch policy: for each input, the
processing functions available from the current state are tried in list
order until one's guard passes. This is deliberately more permissive than
the routed dispatch the test generators use (at most one candidate per
state and input); the two policies are distinct and must stay separate.

Sessions can be persisted through a ports.SessionStore for stop-and-resume
interactive runs.
*/
package runner
