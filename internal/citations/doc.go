// Package citations provides the cross-reference scanners applied to each
// headnote: Oregon Revised Statutes (ORS), Oregon Administrative Rules
// (OAR) and reported Oregon cases (Or, Or App, Or LUBA).
//
// Scanners are registered by name with a Registry at startup so that the
// set of scanners, and their patterns, can be chosen from configuration.
package citations
