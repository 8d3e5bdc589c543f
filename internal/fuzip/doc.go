// Package fuzip pairs the elements of two ordered collections by edit
// distance, maximizing total pairing quality instead of pairing greedily.
//
// Zip builds a cost matrix of generalized Damerau-Levenshtein distances
// between every element of the shorter side (rows) and every element of the
// longer side (columns), solves the minimum-cost assignment with the
// Hungarian algorithm, and returns a Sequence that first replays every solved
// pair and then every unmatched element of the longer side as a one-sided
// "straggler" record. Records are always reported in the caller's left/right
// orientation even when the sides were swapped internally.
//
// All matrix and solver work happens inside Zip; iterating the Sequence only
// replays precomputed records. Precondition violations (an empty input, a
// weight that cannot be represented) panic: they are caller bugs, not
// runtime conditions.
package fuzip
