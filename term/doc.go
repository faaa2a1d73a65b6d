// Package term is a small widget toolkit drawn on a simulated tcell
// terminal.
//
// It gives the tester packages a real toolkit to drive: widgets receive
// native tcell mouse and key events, injected through the Screen, and
// redraw into cells that can be read back. Nothing reaches a widget until
// ProcessEvents turns the event loop.
//
//	s, _ := term.NewScreen(80, 24)
//	count := term.NewLabel("count", "0")
//	n := 0
//	s.Add(term.NewButton("increment", "+1", func() {
//	    n++
//	    count.SetText(strconv.Itoa(n))
//	}), count)
package term
