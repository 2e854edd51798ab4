// Package cascade chains filters in series.
//
// A [Cascade] exclusively owns its stages: every insertion stores a deep
// copy, so the caller's filter and the stage never share memory. All stages
// must run at the cascade's sample rate; the check is made at insertion
// time.
//
// Methods on *Cascade ([Cascade.Append], [Cascade.Merge]) mutate the
// receiver. The package-level helpers [Join], [Extend] and [Concat] always
// build a new cascade and leave their arguments untouched.
package cascade
