package soul

import (
	"fmt"
	"strings"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// WhoInfo records where a referent occurred in the parsed sentence.
type WhoInfo struct {
	Sequence     int    // position among the referents on the line
	PreviousWord string // the word preceding it, if any
}

func (w *WhoInfo) String() string {
	return fmt.Sprintf("[seq=%d, prev_word=%s]", w.Sequence, w.PreviousWord)
}

// WhoMap is an insertion-ordered map from referents to their parse details.
// Mentioning the same referent twice folds into a single entry.
type WhoMap struct {
	order []*world.Object
	info  map[*world.Object]*WhoInfo
}

// NewWhoMap creates an empty WhoMap.
func NewWhoMap() *WhoMap {
	return &WhoMap{info: make(map[*world.Object]*WhoInfo)}
}

// Add records obj at the given sequence position. A re-mention updates the
// parse details but keeps the original position in the order.
func (m *WhoMap) Add(obj *world.Object, previousWord string, sequence int) {
	if in, ok := m.info[obj]; ok {
		in.Sequence = sequence
		in.PreviousWord = previousWord
		return
	}
	m.info[obj] = &WhoInfo{Sequence: sequence, PreviousWord: previousWord}
	m.order = append(m.order, obj)
}

// Remove drops obj; removing an absent referent is a no-op.
func (m *WhoMap) Remove(obj *world.Object) {
	if _, ok := m.info[obj]; !ok {
		return
	}
	delete(m.info, obj)
	for i, o := range m.order {
		if o == obj {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Clear empties the map.
func (m *WhoMap) Clear() {
	m.order = nil
	m.info = make(map[*world.Object]*WhoInfo)
}

// Len returns the number of distinct referents.
func (m *WhoMap) Len() int { return len(m.order) }

// Contains reports whether obj was mentioned.
func (m *WhoMap) Contains(obj *world.Object) bool {
	_, ok := m.info[obj]
	return ok
}

// Info returns the parse details for obj, or nil.
func (m *WhoMap) Info(obj *world.Object) *WhoInfo { return m.info[obj] }

// All returns the referents in the order they occurred on the line.
func (m *WhoMap) All() []*world.Object {
	return append([]*world.Object(nil), m.order...)
}

// ParseResult captures the result of a parsed input line.
type ParseResult struct {
	Verb         string
	Adverb       string
	Message      string
	BodyPart     string
	Qualifier    string
	Who          *WhoMap
	Args         []string
	Unrecognized []string
	Unparsed     string
}

// NewParseResult creates an empty result for the given verb.
func NewParseResult(verb string) *ParseResult {
	return &ParseResult{Verb: verb, Who: NewWhoMap()}
}

// NewParseResultWho builds a result from an explicit target list. Mentioning
// the same target more than once is rejected.
func NewParseResultWho(verb string, who ...*world.Object) (*ParseResult, error) {
	p := NewParseResult(verb)
	var duplicates []string
	for seq, obj := range who {
		if p.Who.Contains(obj) {
			duplicates = append(duplicates, obj.Name)
		}
		p.Who.Add(obj, "", seq)
	}
	if len(duplicates) > 0 {
		return nil, parseErrorf(
			"You can do only one thing at the same time with %s. Try to use multiple separate commands instead.",
			lang.Join(duplicates))
	}
	return p, nil
}

// Who1 returns the first referent on the line, or nil.
func (p *ParseResult) Who1() *world.Object {
	if p.Who.Len() == 0 {
		return nil
	}
	return p.Who.order[0]
}

// Who12 returns the first two referents, nil-padded.
func (p *ParseResult) Who12() (*world.Object, *world.Object) {
	var w [2]*world.Object
	copy(w[:], p.Who.order)
	return w[0], w[1]
}

// Who123 returns the first three referents, nil-padded.
func (p *ParseResult) Who123() (*world.Object, *world.Object, *world.Object) {
	var w [3]*world.Object
	copy(w[:], p.Who.order)
	return w[0], w[1], w[2]
}

// WhoLast returns the last referent on the line, or nil.
func (p *ParseResult) WhoLast() *world.Object {
	if p.Who.Len() == 0 {
		return nil
	}
	return p.Who.order[p.Who.Len()-1]
}

func (p *ParseResult) String() string {
	var b strings.Builder
	b.WriteString("ParseResult:\n")
	fmt.Fprintf(&b, " verb=%s\n", p.Verb)
	fmt.Fprintf(&b, " qualifier=%s\n", p.Qualifier)
	fmt.Fprintf(&b, " adverb=%s\n", p.Adverb)
	fmt.Fprintf(&b, " bodypart=%s\n", p.BodyPart)
	fmt.Fprintf(&b, " message=%s\n", p.Message)
	fmt.Fprintf(&b, " args=%v\n", p.Args)
	fmt.Fprintf(&b, " unrecognized=%v\n", p.Unrecognized)
	fmt.Fprintf(&b, " who_count=%d\n", p.Who.Len())
	for _, obj := range p.Who.All() {
		fmt.Fprintf(&b, "  %s->%s\n", obj.Name, p.Who.Info(obj))
	}
	fmt.Fprintf(&b, " unparsed=%s", p.Unparsed)
	return b.String()
}
