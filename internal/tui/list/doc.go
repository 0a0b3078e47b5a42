// Package listview provides a scrolling row window for Bubble Tea views.
//
// Only the rows that fit the viewport height are rendered, and the window
// follows the cursor as it moves.
package listview
