package imbridge

// ClipboardText reads text from the host clipboard. The cached result is
// cleared first, so an unavailable clipboard or non-text content yields "".
func (b *Bridge) ClipboardText() string {
	b.clipboardText = ""
	if b.clipboard == nil || !b.clipboard.Open() {
		b.logger.Debug("clipboard unavailable for reading")
		return b.clipboardText
	}
	defer b.clipboard.Close()

	if b.clipboard.SupportsText() {
		b.clipboardText = b.clipboard.Text()
	}
	return b.clipboardText
}

// SetClipboardText replaces the host clipboard content with text. It does
// nothing if the clipboard cannot be opened.
func (b *Bridge) SetClipboardText(text string) {
	if b.clipboard == nil || !b.clipboard.Open() {
		b.logger.Debug("clipboard unavailable for writing")
		return
	}
	defer b.clipboard.Close()

	if !b.clipboard.SetText(text) {
		b.logger.Debug("clipboard rejected text", "len", len(text))
	}
}

// bridgeClipboard exposes a Bridge as the GUI's clipboard provider.
type bridgeClipboard struct {
	b *Bridge
}

func (c bridgeClipboard) GetText() string     { return c.b.ClipboardText() }
func (c bridgeClipboard) SetText(text string) { c.b.SetClipboardText(text) }
