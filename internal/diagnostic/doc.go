// Package diagnostic provides structured errors, warnings and notes reported
// while resolving and generating enum codecs.
//
// Key capabilities:
//   - Generation errors with the enum, variant and source position involved
//   - Warnings for shadowed strings and near-miss directive names
//   - "did you mean" suggestions attached to unknown names
package diagnostic
