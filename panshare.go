// Package panshare provides a CLI crawler for knowledge-base sites that
// publish Baidu Netdisk share links. It enumerates article pages from a
// listing, extracts each article's title, SEO tags, and share links with
// their access passwords, and emits the results as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package panshare
