// Package docsearch answers questions about software libraries from their
// official documentation. It searches a library's documentation site, fetches
// the best matching pages, strips them to readable text and hands the
// citation-tagged result to a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., serper/, trafilatura/, gemini/).
package docsearch
