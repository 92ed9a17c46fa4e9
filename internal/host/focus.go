package host

// Target is one focusable host element.
type Target interface {
	// FocusID uniquely identifies the target within its provider.
	FocusID() string
}

// FocusProvider abstracts host focus discovery and movement. The engine
// never inspects a host document tree directly; the placeholder leap asks
// the provider for the ordered tabbable set when no in-document candidate
// exists.
type FocusProvider interface {
	// Tabbables returns the ordered focusable elements of the host.
	Tabbables() []Target

	// Current returns the currently focused element, or nil.
	Current() Target

	// Focus moves host focus to the given element.
	Focus(t Target)
}

// NoFocus is a FocusProvider for hosts without tabbable elements.
type NoFocus struct{}

// Tabbables implements FocusProvider.
func (NoFocus) Tabbables() []Target { return nil }

// Current implements FocusProvider.
func (NoFocus) Current() Target { return nil }

// Focus implements FocusProvider.
func (NoFocus) Focus(Target) {}

// StaticTarget is a Target identified by its string value.
type StaticTarget string

// FocusID implements Target.
func (t StaticTarget) FocusID() string { return string(t) }

// StaticProvider is a fixed, in-memory FocusProvider for tests and demos.
type StaticProvider struct {
	Items   []Target
	Focused int
}

// Tabbables implements FocusProvider.
func (p *StaticProvider) Tabbables() []Target { return p.Items }

// Current implements FocusProvider.
func (p *StaticProvider) Current() Target {
	if p.Focused < 0 || p.Focused >= len(p.Items) {
		return nil
	}
	return p.Items[p.Focused]
}

// Focus implements FocusProvider.
func (p *StaticProvider) Focus(t Target) {
	for i, item := range p.Items {
		if item.FocusID() == t.FocusID() {
			p.Focused = i
			return
		}
	}
}
