// Package newswire extracts structured news-article records from a single
// listing page, enriches them with named entities and lexical metrics, and
// hands the normalized batch to an analytical sink. Selector resolution is
// adaptive: a remote model proposes CSS rules for the current layout and a
// built-in default rule set serves as the fallback whenever the model is
// unavailable or returns garbage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package newswire
