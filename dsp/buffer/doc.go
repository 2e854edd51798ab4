// Package buffer holds mono sample blocks tagged with their sample rate and
// runs them through filters.
//
// [Buffer] is an optional convenience around a []float64; every filter also
// accepts raw slices. [ProcessFloatBuffer] bridges go-audio's FloatBuffer so
// decoded audio can be filtered without copying. Only single-channel data is
// accepted.
package buffer
