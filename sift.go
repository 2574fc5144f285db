// Package sift extracts clean, bounded plain text from noisy markup:
// search-engine result pages, syndication feeds and arbitrary web pages.
// A calling agent receives a formatted report instead of raw HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, etree/, http/).
package sift
