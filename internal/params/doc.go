// Package params turns the per-matrix keyword records attached to a method
// block into typed arguments for an assessment method.
//
// Raw values arrive as JSON fragments. Each recognized key has a target cty
// type; values are converted with go-cty, so "0.5" and 0.5 are both accepted
// for a number and a nested array is accepted for a list of lists. Selector
// keys (normalization, distance, defuzzification, preference and expert
// functions) are resolved through the registry into callable strategies.
//
// The resolved set is split into construction-time and call-time arguments.
// Most keys are construction-time; the exceptions are listed in callTime.
package params
