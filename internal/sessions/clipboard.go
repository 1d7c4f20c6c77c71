package sessions

import "sync"

// Clipboard holds the last text a session copied until the browser reads it
// and places it on the host clipboard.
type Clipboard struct {
	mu      sync.Mutex
	text    string
	written bool
}

// WriteText replaces the clipboard contents.
func (c *Clipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.written = true
	return nil
}

// Text returns the clipboard contents and whether anything was ever written.
func (c *Clipboard) Text() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.written
}
