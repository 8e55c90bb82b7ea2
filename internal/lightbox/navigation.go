package lightbox

// ComputeNext returns the index after current. The second result is false when
// no navigation is possible: an empty gallery, or the last image without loop.
func ComputeNext(current, length int, loop bool) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	if current < 0 {
		return 0, true
	}
	if current < length-1 {
		return current + 1, true
	}
	if loop {
		return 0, true
	}
	return 0, false
}

// ComputePrev is the mirror of ComputeNext.
func ComputePrev(current, length int, loop bool) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	if current >= length {
		return length - 1, true
	}
	if current > 0 {
		return current - 1, true
	}
	if loop {
		return length - 1, true
	}
	return 0, false
}

// Next requests the following image, or nothing at a closed boundary.
func Next(props Props) []Event {
	index, ok := ComputeNext(props.CurrentIndex, props.Len(), props.Options.Loop)
	if !ok {
		return nil
	}
	return []Event{NavigationRequested{Index: index}}
}

// Prev requests the preceding image, or nothing at a closed boundary.
func Prev(props Props) []Event {
	index, ok := ComputePrev(props.CurrentIndex, props.Len(), props.Options.Loop)
	if !ok {
		return nil
	}
	return []Event{NavigationRequested{Index: index}}
}
