package model

// ExtendSelection grows the selection by one offset in the given direction,
// keeping the anchor fixed. Capture-selection branches are covered whole
// and skip-boundary atoms cost one extra offset, mirroring Move. Reports
// false when the extension would leave the document.
func (m *Model) ExtendSelection(d Direction) bool {
	m.ensure()
	delta := Offset(1)
	if d == Backward {
		delta = -1
	}
	pos := m.position + delta

	if a := m.At(pos); a != nil {
		if owner := a.CaptureOwner(); owner != nil {
			r := m.CoveringRange(owner)
			if d == Forward {
				pos = r.End
			} else {
				pos = r.Start
			}
		} else if a.SkipBoundary {
			pos += delta
		}
	}

	if pos < 0 || pos > m.lastOffset() {
		return false
	}
	m.SetSelection(m.anchor, pos)
	return true
}
