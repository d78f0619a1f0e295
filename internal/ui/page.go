// Package ui holds an in-memory model of the widget page: elements addressed by id,
// click bindings, dialogs and a JSON snapshot for clients.
package ui

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

// Layout statically present elements in page order
var Layout = []string{
	domain.ElementPrevMonth,
	domain.ElementMonthYear,
	domain.ElementNextMonth,
	domain.ElementCalendar,
	domain.ElementTimeSlots,
	domain.ElementSelectedDate,
	domain.ElementSlotsGrid,
	domain.ElementBookingForm,
	domain.ElementInputDate,
	domain.ElementInputTime,
	domain.ElementClientName,
	domain.ElementClientPhone,
	domain.ElementConfirm,
	domain.ElementCancelForm,
	domain.ElementAppointments,
}

type element struct {
	id       string
	kind     string
	text     string
	value    string
	classes  map[string]bool
	children []*element
}

// Page in-memory page. Not safe for concurrent use: the owner serializes events.
type Page struct {
	elements map[string]*element
	handlers map[string]func(ctx context.Context)

	alerts        []string
	confirms      []string
	confirmAnswer bool
	focused       string
}

// NewPage creates a page with the widget layout
func NewPage() *Page {
	p := &Page{
		elements: make(map[string]*element, len(Layout)),
		handlers: make(map[string]func(ctx context.Context)),
	}
	for _, id := range Layout {
		p.elements[id] = &element{id: id, classes: map[string]bool{}}
	}
	return p
}

// Render replaces the contents of container.
// Bindings of the replaced elements are dropped together with them.
func (p *Page) Render(container string, nodes []domain.Node) {
	c, ok := p.elements[container]
	if !ok {
		return
	}

	for _, child := range c.children {
		p.forget(child)
	}

	c.children = make([]*element, 0, len(nodes))
	for _, n := range nodes {
		c.children = append(c.children, p.build(n))
	}
}

func (p *Page) build(n domain.Node) *element {
	e := &element{
		id:      n.ID,
		kind:    n.Kind,
		text:    n.Text,
		classes: make(map[string]bool, len(n.Classes)),
	}
	for _, class := range n.Classes {
		e.classes[class] = true
	}
	for _, child := range n.Children {
		e.children = append(e.children, p.build(child))
	}
	if e.id != "" {
		p.elements[e.id] = e
	}
	return e
}

func (p *Page) forget(e *element) {
	if e.id != "" {
		delete(p.elements, e.id)
		delete(p.handlers, e.id)
		if p.focused == e.id {
			p.focused = ""
		}
	}
	for _, child := range e.children {
		p.forget(child)
	}
}

// OnClick binds handler to the element. Unknown ids are ignored.
func (p *Page) OnClick(id string, handler func(ctx context.Context)) {
	if _, ok := p.elements[id]; !ok {
		return
	}
	p.handlers[id] = handler
}

// Click dispatches a click. Returns false if the element is absent or has no binding.
func (p *Page) Click(ctx context.Context, id string) bool {
	handler, ok := p.handlers[id]
	if !ok {
		return false
	}
	handler(ctx)
	return true
}

// Exists returns true if the element is on the page
func (p *Page) Exists(id string) bool {
	_, ok := p.elements[id]
	return ok
}

// Clickable returns true if the element has a click binding
func (p *Page) Clickable(id string) bool {
	_, ok := p.handlers[id]
	return ok
}

// SetText sets the element text
func (p *Page) SetText(id, text string) {
	if e, ok := p.elements[id]; ok {
		e.text = text
	}
}

// Text returns the element text
func (p *Page) Text(id string) string {
	if e, ok := p.elements[id]; ok {
		return e.text
	}
	return ""
}

// Value returns the value of an input element
func (p *Page) Value(id string) string {
	if e, ok := p.elements[id]; ok {
		return e.value
	}
	return ""
}

// SetValue sets the value of an input element
func (p *Page) SetValue(id, value string) {
	if e, ok := p.elements[id]; ok {
		e.value = value
	}
}

// ToggleClass adds or removes a class
func (p *Page) ToggleClass(id, class string, on bool) {
	e, ok := p.elements[id]
	if !ok {
		return
	}
	if on {
		e.classes[class] = true
	} else {
		delete(e.classes, class)
	}
}

// HasClass returns true if the element has the class
func (p *Page) HasClass(id, class string) bool {
	e, ok := p.elements[id]
	return ok && e.classes[class]
}

// Focus moves input focus to the element
func (p *Page) Focus(id string) {
	if _, ok := p.elements[id]; ok {
		p.focused = id
	}
}

// Focused returns the focused element id
func (p *Page) Focused() string {
	return p.focused
}

// Alert records a blocking alert
func (p *Page) Alert(msg string) {
	p.alerts = append(p.alerts, msg)
}

// Confirm records a blocking confirm and returns the prepared answer.
// The answer resets to false after each dialog.
func (p *Page) Confirm(msg string) bool {
	p.confirms = append(p.confirms, msg)
	answer := p.confirmAnswer
	p.confirmAnswer = false
	return answer
}

// AnswerConfirm prepares the answer for the next confirm dialog
func (p *Page) AnswerConfirm(answer bool) {
	p.confirmAnswer = answer
}

// DrainAlerts returns and clears recorded alerts
func (p *Page) DrainAlerts() []string {
	alerts := p.alerts
	p.alerts = nil
	return alerts
}

// DrainConfirms returns and clears recorded confirm prompts
func (p *Page) DrainConfirms() []string {
	confirms := p.confirms
	p.confirms = nil
	return confirms
}

// Children returns the rendered nodes of a container
func (p *Page) Children(container string) []domain.Node {
	c, ok := p.elements[container]
	if !ok {
		return nil
	}
	nodes := make([]domain.Node, 0, len(c.children))
	for _, child := range c.children {
		nodes = append(nodes, child.node())
	}
	return nodes
}

func (e *element) node() domain.Node {
	n := domain.Node{
		ID:      e.id,
		Kind:    e.kind,
		Text:    e.text,
		Classes: sortedClasses(e.classes),
	}
	for _, child := range e.children {
		n.Children = append(n.Children, child.node())
	}
	return n
}

func sortedClasses(classes map[string]bool) []string {
	if len(classes) == 0 {
		return nil
	}
	out := make([]string, 0, len(classes))
	for class := range classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}
