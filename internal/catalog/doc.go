// Package catalog holds static knowledge about mako's configuration keys.
//
// The catalog is pure, immutable data: the list of recognized keys with a
// one-line description each, and a set of suggested values for keys that
// take one of a few known words (layer, icons, text-align, ...). Keys not
// in the catalog are still legal everywhere in the editor - the catalog
// exists to guide the user, never to reject input.
package catalog
