package components

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FilteredEntry is a single-line entry that drops runes its predicate rejects
// and stops accepting input at maxLength runes (zero means unlimited)
type FilteredEntry struct {
	widget.Entry

	allow     func(rune) bool
	maxLength int
}

// NewFilteredEntry creates an entry restricted by allow and maxLength
func NewFilteredEntry(allow func(rune) bool, maxLength int) *FilteredEntry {
	entry := &FilteredEntry{
		allow:     allow,
		maxLength: maxLength,
	}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune forwards r only when it passes the filter
func (e *FilteredEntry) TypedRune(r rune) {
	if !e.accepts(r) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut filters pasted text rune by rune
func (e *FilteredEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok || paste.Clipboard == nil {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	for _, r := range paste.Clipboard.Content() {
		e.TypedRune(r)
	}
}

func (e *FilteredEntry) accepts(r rune) bool {
	if e.allow != nil && !e.allow(r) {
		return false
	}
	if e.maxLength > 0 && utf8.RuneCountInString(e.Text) >= e.maxLength {
		return false
	}
	return true
}
