// Package pipeline runs the fetch, filter, normalize, serialize sequence.
//
// One invocation is one pass: a single upstream search, an in-memory
// normalization of the returned page, and a full overwrite of the output
// document. There is no concurrency and no state carried between runs
// beyond the output file itself.
package pipeline
