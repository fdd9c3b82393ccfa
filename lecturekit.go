// Package lecturekit reorganizes static HTML lecture pages. It moves inline
// stylesheets and scripts out into external files, relocates image paths
// under an images/ folder, and slices single-file pages into separate
// HTML, CSS and JavaScript files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, html/, yaml/).
package lecturekit
