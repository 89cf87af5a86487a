// Package scraped extracts structured data from HTML documents using named
// CSS selectors and derived properties, and can follow designated links one
// level deep to build a shallow page graph.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package scraped
