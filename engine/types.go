package engine

import v1 "krypt.co/ikescan/isakmp/v1"

// CandidateTransform is one (encryption, hash, auth, group[, key length])
// tuple the engine can propose or recognize in a response. It is the same
// shape the v1 generator already builds a transform from, so enumeration,
// bisection and decoding all share one comparable value type.
type CandidateTransform = v1.TransformSpec

// Batch is a FIFO unit of work: one or more candidate transforms the driver
// proposes together in a single probe.
type Batch struct {
	Transforms []CandidateTransform
}
