// Package numeric converts command-line operands to float64 and renders
// float64 values for display. Conversion is permissive: it reads the longest
// numeric prefix of a string and falls back to zero, never failing.
package numeric
