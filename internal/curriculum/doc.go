// Package curriculum holds the lesson catalog:
// an ordered, read-only list of [Lesson]s that drives navigation
// and the contents of every rendered page.
//
// Catalogs are built once at startup with [New] or [Load]
// and never modified afterwards.
// Lesson content is not part of the catalog;
// each lesson references a [Document] that is read on demand.
package curriculum
