// Package renderer turns report values into markdown strings. It knows
// nothing about terminals; callers decide how to display the result.
package renderer

const notAvailable = "n/a"
