// Package api2md converts rendered API documentation web pages into clean,
// self-contained Markdown files. It drives a headless browser to reveal
// collapsed content, isolates the documentation subtree from navigation
// chrome, infers endpoint identity (HTTP method + path) from unstructured
// text, and writes deterministically named Markdown output.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, htmltomarkdown/).
package api2md
