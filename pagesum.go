// Package pagesum produces compact, structured summaries of rendered web
// pages: a canonical title, a short description, ranked key points,
// representative images and an inferred brand color pair.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The extraction engine lives in extract/;
// adapters live in subdirectories named after their primary dependency
// (e.g., goquery/, rod/, sqlite/).
package pagesum
