package form

// FocusNext moves focus to the element after the focused one in order,
// wrapping at the end. When nothing is focused the first element gains focus.
// It returns the index now holding focus, or -1 for an empty order.
func FocusNext(order []Focusable) int {
	return moveFocus(order, 1)
}

// FocusPrev is FocusNext in the opposite direction. When nothing is focused
// the last element gains focus.
func FocusPrev(order []Focusable) int {
	return moveFocus(order, -1)
}

// Focused returns the index of the first focused element, or -1.
func Focused(order []Focusable) int {
	for i, el := range order {
		if el.Focused() {
			return i
		}
	}
	return -1
}

func moveFocus(order []Focusable, step int) int {
	n := len(order)
	if n == 0 {
		return -1
	}
	current := Focused(order)
	next := 0
	switch {
	case current >= 0:
		next = ((current+step)%n + n) % n
	case step < 0:
		next = n - 1
	}
	for _, el := range order {
		if el.Focused() {
			el.Blur()
		}
	}
	order[next].Focus()
	return next
}
