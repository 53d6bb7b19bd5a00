// Package derive computes every displayed figure from stored records. All
// functions are pure: they never mutate their inputs and treat empty or
// malformed data as zero.
package derive
