// Package query defines the queries a test can inspect a target with.
//
// Queries read state and never modify the target.
package query

// DisplayedText asks for the text the target currently shows.
type DisplayedText struct{}

// IsChecked asks whether a checkable target is checked.
type IsChecked struct{}

// IsEnabled asks whether the target accepts input.
type IsEnabled struct{}

// IsVisible asks whether the target is shown.
type IsVisible struct{}

// SelectedText asks for the text of the selected choice.
type SelectedText struct{}

// SelectedIndex asks for the index of the selected choice, or -1.
type SelectedIndex struct{}
