// Package diagnostic provides structured warnings, errors, and infos
// collected while introspecting bound types and validating configuration.
//
// Key capabilities:
//   - Configured fields that are transient or missing
//   - Types without any mapped field
//   - "Did you mean" suggestions for misspelled field names
package diagnostic
