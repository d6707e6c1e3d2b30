// Package world holds the minimal world model the soul parser works against:
// locations and the three referent kinds a command can target (livings, items
// and exits). The parser only ever reads this model; ownership and mutation
// belong to the surrounding engine.
package world

import (
	"strings"

	"github.com/crystal-mush/gosoul/pkg/lang"
)

// Kind tags the variant of an Object.
type Kind int

const (
	KindItem Kind = iota
	KindLiving
	KindExit
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiving:
		return "living"
	case KindExit:
		return "exit"
	}
	return "item"
}

// Object is a referent: an item, a living or an exit. The shared fields are
// always valid; Location and inventory are only meaningful for livings,
// Target only for exits. Identity (the pointer) is what the parser keys on.
type Object struct {
	Kind    Kind
	Name    string // lowercase
	Title   string
	Aliases []string
	Gender  lang.Gender

	// DefaultVerb is the action used when the object is named without a
	// verb ("newspaper" -> "read newspaper"). Empty means examine.
	DefaultVerb string

	// Living state.
	Location  *Location
	inventory map[*Object]bool

	// Exit state.
	Target *Location
}

// Location is a room: a direction table of exits plus the livings and items
// currently in it.
type Location struct {
	Name    string
	Title   string
	Exits   map[string]*Object
	Livings map[*Object]bool
	Items   map[*Object]bool
}

// NewLocation creates an empty location.
func NewLocation(name string) *Location {
	return &Location{
		Name:    name,
		Title:   name,
		Exits:   make(map[string]*Object),
		Livings: make(map[*Object]bool),
		Items:   make(map[*Object]bool),
	}
}

// NewItem creates an inert item. The name is lowercased; the title keeps the
// original spelling.
func NewItem(name string, aliases ...string) *Object {
	return &Object{
		Kind:    KindItem,
		Name:    lower(name),
		Title:   name,
		Aliases: lowerAll(aliases),
	}
}

// NewLiving creates a living with no location; call Move to place it.
func NewLiving(name string, gender lang.Gender) *Object {
	return &Object{
		Kind:      KindLiving,
		Name:      lower(name),
		Title:     name,
		Gender:    gender,
		inventory: make(map[*Object]bool),
	}
}

// NewExit creates an exit named after the first direction; any further
// directions become aliases. Call Bind to register it in a location's
// direction table.
func NewExit(directions []string, target *Location) *Object {
	if len(directions) == 0 {
		panic("world: exit needs at least one direction")
	}
	title := "Exit"
	if target != nil {
		title = "Exit to " + target.Title
	}
	return &Object{
		Kind:    KindExit,
		Name:    lower(directions[0]),
		Title:   title,
		Aliases: lowerAll(directions[1:]),
		Target:  target,
	}
}

// Bind registers the exit in the location's direction table under its name
// and all aliases.
func (o *Object) Bind(loc *Location) {
	loc.Exits[o.Name] = o
	for _, alias := range o.Aliases {
		loc.Exits[alias] = o
	}
}

// Move places a living in a new location, removing it from the old one.
func (o *Object) Move(loc *Location) {
	if o.Location != nil {
		delete(o.Location.Livings, o)
	}
	o.Location = loc
	if loc != nil {
		loc.Livings[o] = true
	}
}

// AddItem puts an item in the living's inventory.
func (o *Object) AddItem(item *Object) {
	if o.inventory == nil {
		o.inventory = make(map[*Object]bool)
	}
	o.inventory[item] = true
}

// RemoveItem takes an item out of the living's inventory.
func (o *Object) RemoveItem(item *Object) {
	delete(o.inventory, item)
}

// Inventory returns the items the living is holding.
func (o *Object) Inventory() []*Object {
	items := make([]*Object, 0, len(o.inventory))
	for item := range o.inventory {
		items = append(items, item)
	}
	return items
}

// SearchItem finds an item by name or alias in the living's inventory or,
// failing that, in its current location. Returns nil when nothing matches.
func (o *Object) SearchItem(name string) *Object {
	name = lower(name)
	for item := range o.inventory {
		if item.Matches(name) {
			return item
		}
	}
	if o.Location != nil {
		for item := range o.Location.Items {
			if item.Matches(name) {
				return item
			}
		}
	}
	return nil
}

// Matches reports whether name equals the object's name or one of its aliases.
func (o *Object) Matches(name string) bool {
	if o.Name == name {
		return true
	}
	for _, alias := range o.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// ActionVerb returns the verb used when the object is named without one.
func (o *Object) ActionVerb() string {
	if o.DefaultVerb != "" {
		return o.DefaultVerb
	}
	return "examine"
}

// Subjective returns the object's subjective pronoun ("he", "she", "it").
func (o *Object) Subjective() string { return o.Gender.Subjective() }

// Objective returns the object's objective pronoun ("him", "her", "it").
func (o *Object) Objective() string { return o.Gender.Objective() }

// Possessive returns the object's possessive pronoun ("his", "her", "its").
func (o *Object) Possessive() string { return o.Gender.Possessive() }

func lower(s string) string { return strings.ToLower(s) }

func lowerAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = lower(n)
	}
	return out
}
