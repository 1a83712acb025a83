// Package console is a terminal frontend for the game service.
//
// Input reads one command per line and turns it into a screen point using
// the same geometry.Layout the engine uses, so a typed command travels the
// exact path a mouse click would. Surface renders the board, the word in
// progress, the status line and the found-word panel as plain text.
//
// Commands:
//
//	<col> <row>    click the cell at (col, row), zero based
//	click <x> <y>  click a raw screen point
//	reset          shake a new board and clear found words
//	up, down       scroll the found-word panel
//	exit           stop the game
package console
