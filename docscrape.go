// Package docscrape scrapes a declared set of documentation pages from a
// remote site and mirrors them as local Markdown files plus a generated
// index. Each run fetches every configured section over HTTP with bounded
// retry, strips presentation chrome, extracts the main content region via
// a prioritized selector list, converts it to Markdown, annotates it with
// provenance metadata, and writes it to disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, yaml/).
package docscrape
