// Package pokedex holds the session state of the catalog viewer: the
// all-or-nothing batch fetch, the category index built from its result,
// the pure view derivation (filter, category, pagination) and the theme
// cycle. Nothing here renders; the ui package projects these values.
package pokedex
