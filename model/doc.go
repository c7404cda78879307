// Package model defines the value types shared by every layer of the MIP
// solver: Bound, Variable, Constraint and Solution.
//
// These are plain value types with no solver-specific behavior attached —
// presolve, implog, lpmodel and search all operate on *Variable/*Constraint
// instances that live inside a single lpmodel.Model and are never shared
// across two Models (see lpmodel.Model.Copy). Two Variables are
// identity-equal iff their Index fields match; Constraint.Coeffs is keyed
// by variable index rather than by *Variable so that copying a Model never
// requires rewriting pointer identities inside coefficient maps.
package model
