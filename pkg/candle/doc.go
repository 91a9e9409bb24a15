// Package candle converts an ordered stream of trade executions into
// discrete summary bars using a pluggable boundary rule and a pluggable
// set of per-bar statistic accumulators. Processing is single-pass,
// constant-memory and strictly synchronous: each trade is consumed
// exactly once, in arrival order, and never re-read.
package candle
