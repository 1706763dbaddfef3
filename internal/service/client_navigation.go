package service

// NavigationCursor points at the card currently shown and carries a version
// counter that forces a re-render after the shown card is edited in place.
//
// The zero value is ready to use. A cursor is owned by the view layer and is
// not safe for concurrent use.
type NavigationCursor struct {
	currentIndex int
	version      int
}

// Index returns the current position.
func (c *NavigationCursor) Index() int {
	return c.currentIndex
}

// Version returns the render version.
func (c *NavigationCursor) Version() int {
	return c.version
}

// Previous moves one card back, wrapping from the first card to the last.
func (c *NavigationCursor) Previous(length int) int {
	if length <= 0 {
		return c.currentIndex
	}
	if c.currentIndex <= 0 {
		c.currentIndex = length - 1
	} else {
		c.currentIndex--
	}
	return c.Clamp(length)
}

// Next moves one card forward, wrapping from the last card to the first.
func (c *NavigationCursor) Next(length int) int {
	if length <= 0 {
		return c.currentIndex
	}
	if c.currentIndex >= length-1 {
		c.currentIndex = 0
	} else {
		c.currentIndex++
	}
	return c.Clamp(length)
}

// GoTo jumps to index, then clamps against length.
func (c *NavigationCursor) GoTo(index, length int) int {
	c.currentIndex = index
	return c.Clamp(length)
}

// BumpVersion forces the current card to be redrawn.
func (c *NavigationCursor) BumpVersion() int {
	c.version++
	return c.version
}

// Clamp keeps the cursor inside a collection of the given length. It must run
// after every change of the collection size.
func (c *NavigationCursor) Clamp(length int) int {
	switch {
	case length <= 0:
		c.currentIndex = 0
	case c.currentIndex >= length:
		c.currentIndex = length - 1
	case c.currentIndex < 0:
		c.currentIndex = 0
	}
	return c.currentIndex
}
