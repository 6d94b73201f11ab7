// Package termhost renders sunbeam scroll containers in a terminal with
// tcell. It drives the demo: a vertical menu next to a scrolling grid of
// tiles, navigated with the keyboard or by clicking.
package termhost
