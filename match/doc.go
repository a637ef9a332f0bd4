// Package match pairs query descriptors with database descriptors.
//
// Rule (global-minimum anchored ratio test):
//  1. D[i][j] = ‖query[i] − database[j]‖² for every pair.
//  2. dmin = min over all of D.
//  3. A query i is matched to its nearest database descriptor j
//     (ties → smallest j) iff D[i][j] ≤ ratio·dmin.
//  4. Unless WithUnique(false) is given, each database descriptor keeps only
//     its closest query (ties → smallest query index).
//
// The threshold is shared by every query: it adapts to how similar the two
// sets are overall rather than to each query's own second-best distance.
// WithNonZeroAnchor makes dmin the smallest non-zero distance, so that one
// duplicated descriptor does not collapse the threshold to zero.
//
// Complexity: O(Q·N·Dim) time, O(Q·N) memory.
package match
