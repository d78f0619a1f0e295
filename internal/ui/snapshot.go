package ui

import "github.com/m04kA/SMC-BookingWidget/internal/domain"

// ElementState state of a layout element
type ElementState struct {
	ID        string        `json:"id"`
	Text      string        `json:"text,omitempty"`
	Value     string        `json:"value,omitempty"`
	Classes   []string      `json:"classes,omitempty"`
	Clickable bool          `json:"clickable,omitempty"`
	Children  []domain.Node `json:"children,omitempty"`
}

// Snapshot serializable state of the whole page
type Snapshot struct {
	Elements []ElementState `json:"elements"`
	Focused  string         `json:"focused,omitempty"`
	Alerts   []string       `json:"alerts,omitempty"`
	Confirms []string       `json:"confirms,omitempty"`
}

// Snapshot returns the page state. Pending alerts and confirm prompts are included, not cleared.
func (p *Page) Snapshot() Snapshot {
	s := Snapshot{
		Elements: make([]ElementState, 0, len(Layout)),
		Focused:  p.focused,
		Alerts:   append([]string(nil), p.alerts...),
		Confirms: append([]string(nil), p.confirms...),
	}
	for _, id := range Layout {
		e := p.elements[id]
		s.Elements = append(s.Elements, ElementState{
			ID:        id,
			Text:      e.text,
			Value:     e.value,
			Classes:   sortedClasses(e.classes),
			Clickable: p.Clickable(id),
			Children:  p.Children(id),
		})
	}
	return s
}

// Element returns the state of one layout element
func (s Snapshot) Element(id string) (ElementState, bool) {
	for _, e := range s.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return ElementState{}, false
}
