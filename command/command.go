// Package command defines the commands a test can perform on a target.
//
// Commands change the state of the target, usually by simulating user input.
// Dispatch is keyed on the command's type; the fields are parameters handed
// to the handler.
package command

// MouseClick clicks the target with the primary mouse button.
type MouseClick struct{}

// MouseDClick double clicks the target with the primary mouse button.
type MouseDClick struct{}

// KeyClick presses and releases a single key.
//
// Key is either a single character or a key name such as "Enter",
// "Backspace" or "Esc".
type KeyClick struct {
	Key string
}

// KeySequence types each character of Text in order.
type KeySequence struct {
	Text string
}
