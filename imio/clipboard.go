package imio

// ClipboardProvider abstracts system clipboard access.
// Platform backends register one on the IO during initialization.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// SetClipboardProvider sets the clipboard provider. Pass nil to remove it.
func (io *IO) SetClipboardProvider(cp ClipboardProvider) {
	io.clipboard = cp
}

// ClipboardProvider returns the current clipboard provider, or nil if not set.
func (io *IO) ClipboardProvider() ClipboardProvider {
	return io.clipboard
}

// ClipboardGetText retrieves text from the clipboard.
// Returns empty string if no clipboard provider is set or clipboard is empty.
func (io *IO) ClipboardGetText() string {
	if io.clipboard != nil {
		return io.clipboard.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard.
// Does nothing if no clipboard provider is set.
func (io *IO) ClipboardSetText(text string) {
	if io.clipboard != nil {
		io.clipboard.SetText(text)
	}
}

// ClipboardAvailable returns true if a clipboard provider is configured.
func (io *IO) ClipboardAvailable() bool {
	return io.clipboard != nil
}
