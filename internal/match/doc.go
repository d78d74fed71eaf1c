// Package match provides edit-distance calculation and suggestion ranking
// used to propose a likely intended word for a near-miss spelling.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the nearest candidate within a distance threshold
package match
