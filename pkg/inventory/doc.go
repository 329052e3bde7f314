// Package inventory holds the job-site inventory aggregate: fixed, ordered
// catalogs of pipe, insulation, fitting, nut, wire and drain pipe entries plus
// the scalar consumable fields recorded for one form session.
//
// A State is treated as immutable once built. Every update goes through a
// With* method that copies the touched catalog and returns a new *State, so
// callers can detect changes by comparing pointers and older snapshots stay
// valid. Catalogs never grow or shrink after New and each entry keeps the
// size label it was created with.
package inventory
