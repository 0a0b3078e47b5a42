// Package detail renders a single product as a labelled card.
package detail
