package frame

// ComponentByID returns the component with the given identifier. Component
// lists are at most a few dozen entries, so a linear scan is fine.
func ComponentByID(components []Component, id byte) (Component, bool) {
	for _, c := range components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// BlocksPerMCU returns the number of 8x8 blocks the component contributes to
// each MCU. The frame maximum is accepted for call-site symmetry with other
// per-component derivations, but the count depends only on the component's
// own sampling factors.
func BlocksPerMCU(c Component, _ MaxSampling) int {
	return c.HorizSampling * c.VertSampling
}
