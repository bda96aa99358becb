package logic

// Navigator handles selection and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move moves the selection by delta, stopping at either end
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// Navigate applies a named direction: up, down, pageup, pagedown, home, end
func (n *Navigator) Navigate(direction string) (int, int) {
	switch direction {
	case "up":
		return n.Move(-1)
	case "down":
		return n.Move(1)
	case "pageup":
		return n.Move(-n.viewportHeight)
	case "pagedown":
		return n.Move(n.viewportHeight)
	case "home":
		return n.SetSelectedIndex(0)
	case "end":
		return n.SetSelectedIndex(n.totalItems - 1)
	}
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
