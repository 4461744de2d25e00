// Package weights provides the edge-cost policies used by the route search.
//
// A policy (Weights) answers two questions about an edge of the rail graph:
//
//   - DirectCost(from, to):   minutes to ride between consecutive stations on one line.
//   - TransferCost(from, to): minutes to change platforms inside an interchange.
//
// Either method may return ErrNotOperating, meaning the service does not run
// that edge in the policy's time window. The search treats this as "no edge",
// never as a failure.
//
// Variants:
//
//	Uniform   – direct 1, transfer 0. Used when no time is supplied.
//	PeakHour  – Mon–Fri 06:00–09:00 and 18:00–21:00. Transfer 15; direct 12 on
//	            busy lines (both endpoints), 10 otherwise.
//	Night     – 22:00–06:00 every day. Night-stop lines do not run; transfer 10;
//	            direct 8 on fast lines (both endpoints), 10 otherwise.
//	Normal    – any other time. Transfer 10; direct 8 on fast lines, 10 otherwise.
//
// The variant set is closed. Selector.ForTime picks one by plain conditional
// dispatch; Lines lets callers override which lines count as busy, stopped
// or fast without introducing new variants.
//
// All policies are immutable values and safe for concurrent use.
package weights
