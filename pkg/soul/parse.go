// Package soul parses free-text player commands and renders the resulting
// social actions as sentences for the actor, the room and the targets.
// Verbs that actually change the world are recognized but handed back to the
// caller through NonSoulVerbError.
package soul

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// greedy single-or-doublequoted string match
var quotedMessageRegex = regexp.MustCompile(`('(.*)')|("(.*)")`)

var skipWords = map[string]bool{
	"and": true, "&": true, "at": true, "to": true, "before": true,
	"in": true, "into": true, "on": true, "off": true, "onto": true,
	"the": true, "with": true, "from": true, "after": true, "under": true,
	"above": true, "next": true,
}

// Soul parses commands for one living (most importantly, a player) and keeps
// the pronoun memory needed to resolve "him", "her", "it" and "them".
type Soul struct {
	previouslyParsed *ParseResult
	catalog          *Catalog
}

// New creates a Soul using the builtin verb catalog.
func New() *Soul {
	return &Soul{previouslyParsed: NewParseResult("")}
}

// NewWithCatalog creates a Soul that resolves verbs through the given
// catalog, which may carry custom socials on top of the builtin table.
func NewWithCatalog(c *Catalog) *Soul {
	return &Soul{previouslyParsed: NewParseResult(""), catalog: c}
}

// IsVerb reports whether verb is a known soul verb.
func (s *Soul) IsVerb(verb string) bool {
	_, ok := s.verbDef(verb)
	return ok
}

func (s *Soul) verbDef(verb string) (VerbDef, bool) {
	if s.catalog != nil {
		return s.catalog.Lookup(verb)
	}
	vd, ok := Verbs[verb]
	return vd, ok
}

// RememberParse stores the parse result so that a later command can refer
// back to its targets with a pronoun ("kiss her").
func (s *Soul) RememberParse(parsed *ParseResult) {
	s.previouslyParsed = parsed
}

// Parse parses a command string into a ParseResult. Exits and external verbs
// surface as NonSoulVerbError; anything unintelligible as ParseError or
// UnknownVerbError.
func (s *Soul) Parse(player *world.Object, cmd string, externalVerbs map[string]bool) (*ParseResult, error) {
	qualifier := ""
	messageVerb := false // does the verb expect a message?
	externalVerb := false
	adverb := ""
	var message []string
	bodypart := ""
	var argWords []string
	var unrecognized []string
	wm := NewWhoMap()
	whoSequence := 0
	unparsed := cmd

	// a substring enclosed in quotes is extracted as the message
	if m := quotedMessageRegex.FindStringSubmatchIndex(cmd); m != nil {
		var quoted string
		if m[4] >= 0 {
			quoted = cmd[m[4]:m[5]]
		} else {
			quoted = cmd[m[8]:m[9]]
		}
		message = []string{strings.TrimSpace(quoted)}
		cmd = cmd[:m[0]] + cmd[m[1]:]
	}

	if strings.TrimSpace(cmd) == "" {
		return nil, &ParseError{Msg: "What?"}
	}
	words := strings.Fields(cmd)
	if _, ok := ActionQualifiers[words[0]]; ok { // suddenly, fail, ...
		qualifier = words[0]
		words = words[1:]
		unparsed = trimConsumed(unparsed, qualifier)
		if qualifier == "dont" {
			qualifier = "don't" // little spelling suggestion
		}
		// the qualifier is not part of the args
	}
	if len(words) > 0 && skipWords[words[0]] {
		skipword := words[0]
		words = words[1:]
		unparsed = trimConsumed(unparsed, skipword)
	}

	if len(words) == 0 {
		return nil, &ParseError{Msg: "What?"}
	}
	var locExits map[string]*world.Object
	if player.Location != nil {
		locExits = player.Location.Exits
	}
	verb := ""
	if externalVerbs[words[0]] { // external verbs have priority over soul verbs
		verb = words[0]
		words = words[1:]
		externalVerb = true
	} else if vd, ok := s.verbDef(words[0]); ok {
		verb = words[0]
		words = words[1:]
		if len(vd.Strings) > 0 {
			messageVerb = strings.Contains(vd.Strings[0], "\nMSG") || strings.Contains(vd.Strings[0], "\nWHAT")
		}
	} else if len(locExits) > 0 {
		// check if the words name a room exit
		moveAction := ""
		if MovementVerbs[words[0]] {
			moveAction = words[0]
			words = words[1:]
			if len(words) == 0 {
				return nil, parseErrorf("%s where?", lang.Capital(moveAction))
			}
		}
		exit, exitName, wordcount := CheckNameWithSpaces(words, 0, nil, nil, locExits)
		if exit != nil {
			if wordcount != len(words) {
				return nil, &ParseError{Msg: "What do you want to do with that?"}
			}
			unparsed = trimConsumed(unparsed, exitName)
			p := NewParseResult(exitName)
			p.Qualifier = qualifier
			p.Unparsed = unparsed
			p.Who.Add(exit, "", 0)
			return nil, &NonSoulVerbError{Parsed: p}
		}
		if moveAction != "" {
			return nil, parseErrorf("You can't %s there.", moveAction)
		}
		// can't determine the verb yet, continue without one
	}

	if verb != "" {
		unparsed = trimConsumed(unparsed, verb)
	}
	includeFlag := true
	collectMessage := false
	allLivings := make(map[string]*world.Object) // livings in the room (including the player), by name and alias
	allItems := make(map[string]*world.Object)   // items in the room or inventory, by name and alias
	if player.Location != nil {
		for living := range player.Location.Livings {
			allLivings[living.Name] = living
			for _, alias := range living.Aliases {
				allLivings[alias] = living
			}
		}
		for item := range player.Location.Items {
			allItems[item.Name] = item
			for _, alias := range item.Aliases {
				allItems[alias] = item
			}
		}
	}
	for _, item := range player.Inventory() {
		allItems[item.Name] = item
		for _, alias := range item.Aliases {
			allItems[alias] = item
		}
	}
	previousWord := ""
	skipNext := 0
	for index := 0; index < len(words); index++ {
		if skipNext > 0 {
			skipNext--
			continue
		}
		word := words[index]
		if collectMessage {
			message = append(message, word)
			argWords = append(argWords, word)
			previousWord = word
			continue
		}
		if !messageVerb {
			word = strings.TrimRight(word, ",")
		}
		if word == "them" || word == "him" || word == "her" || word == "it" {
			// connect the pronoun to a previously parsed item/living
			matches, err := s.matchPreviouslyParsed(player, word)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if includeFlag {
					wm.Add(m.who, previousWord, whoSequence)
					whoSequence++
				} else {
					wm.Remove(m.who)
				}
				argWords = append(argWords, m.name) // the replacement name, not the pronoun
			}
			previousWord = ""
			continue
		}
		if word == "me" || word == "myself" || word == "self" {
			if includeFlag {
				wm.Add(player, previousWord, whoSequence)
				whoSequence++
			} else {
				wm.Remove(player)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if _, ok := BodyParts[word]; ok {
			if bodypart != "" {
				return nil, parseErrorf("You can't do that both %s and %s.", BodyParts[bodypart], BodyParts[word])
			}
			_, isItem := allItems[word]
			_, isLiving := allLivings[word]
			if (!isItem && !isLiving) || previousWord == "my" {
				bodypart = word
				argWords = append(argWords, word)
				continue
			}
		}
		if word == "everyone" || word == "everybody" || word == "all" {
			if includeFlag {
				if len(allLivings) == 0 {
					return nil, &ParseError{Msg: "There is nobody here."}
				}
				// include every living thing visible, skip items and the player itself
				for living := range player.Location.Livings {
					if living != player {
						wm.Add(living, previousWord, whoSequence)
						whoSequence++
					}
				}
			} else {
				wm.Clear()
				whoSequence = 0
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if word == "everything" {
			return nil, &ParseError{Msg: "You can't do something to everything around you, be more specific."}
		}
		if word == "except" || word == "but" {
			includeFlag = !includeFlag
			argWords = append(argWords, word)
			continue
		}
		if IsAdverb(word) {
			if adverb != "" {
				return nil, parseErrorf("You can't do that both %s and %s.", adverb, word)
			}
			adverb = word
			argWords = append(argWords, word)
			continue
		}
		if living, ok := allLivings[word]; ok {
			if includeFlag {
				wm.Add(living, previousWord, whoSequence)
				whoSequence++
			} else {
				wm.Remove(living)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if item, ok := allItems[word]; ok {
			if includeFlag {
				wm.Add(item, previousWord, whoSequence)
				whoSequence++
			} else {
				wm.Remove(item)
			}
			argWords = append(argWords, word)
			previousWord = ""
			continue
		}
		if player.Location != nil {
			exit, exitName, wordcount := CheckNameWithSpaces(words, index, nil, nil, player.Location.Exits)
			if exit != nil {
				wm.Add(exit, previousWord, whoSequence)
				whoSequence++
				previousWord = ""
				if exitName != "" {
					argWords = append(argWords, exitName)
				}
				skipNext = wordcount - 1
				continue
			}
		}
		if itemOrLiving, fullName, wordcount := CheckNameWithSpaces(words, index, allLivings, allItems, nil); itemOrLiving != nil {
			skipNext = wordcount - 1
			if includeFlag {
				wm.Add(itemOrLiving, previousWord, whoSequence)
				whoSequence++
			} else {
				wm.Remove(itemOrLiving)
			}
			if fullName != "" {
				argWords = append(argWords, fullName)
			}
			previousWord = ""
			continue
		}
		if messageVerb && len(message) == 0 {
			collectMessage = true
			message = append(message, word)
			argWords = append(argWords, word)
			continue
		}
		if !skipWords[word] {
			// unrecognized word; could it be a prefix of a name?
			if wm.Len() == 0 {
				for name := range allLivings {
					if strings.HasPrefix(name, word) {
						return nil, parseErrorf("Perhaps you meant %s?", name)
					}
				}
				for name := range allItems {
					if strings.HasPrefix(name, word) {
						return nil, parseErrorf("Perhaps you meant %s?", name)
					}
				}
			}
			if !externalVerb {
				if verb == "" {
					return nil, &UnknownVerbError{Verb: word, Words: words, Qualifier: qualifier}
				}
				// a prefix of an adverb?
				prefixed := SearchPrefix(word)
				if len(prefixed) == 1 {
					word = prefixed[0]
					if adverb != "" {
						return nil, parseErrorf("You can't do that both %s and %s.", adverb, word)
					}
					adverb = word
					argWords = append(argWords, word)
					previousWord = word
					continue
				} else if len(prefixed) > 1 {
					return nil, parseErrorf("What adverb did you mean: %s?", lang.JoinConj(prefixed, "or"))
				}
			}
			if externalVerb {
				argWords = append(argWords, word)
				unrecognized = append(unrecognized, word)
			} else {
				if _, ok := s.verbDef(word); ok {
					return nil, parseErrorf("The word %s makes no sense at that location.", word)
				}
				if _, ok := ActionQualifiers[word]; ok {
					return nil, parseErrorf("The word %s makes no sense at that location.", word)
				}
				if _, ok := BodyParts[word]; ok {
					return nil, parseErrorf("The word %s makes no sense at that location.", word)
				}
				errormsg := parseErrorf("It's not clear what you mean by '%s'.", word)
				if r, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(r) {
					errormsg.Msg += " Just type in lowercase ('" + strings.ToLower(word) + "')."
				}
				return nil, errormsg
			}
		}
		previousWord = word
	}

	if verb == "" {
		// no verb, but maybe the user named a single object or creature;
		// in that case use that thing's default verb.
		if wm.Len() == 1 {
			verb = wm.All()[0].ActionVerb()
		} else {
			return nil, &UnknownVerbError{Verb: words[0], Words: words, Qualifier: qualifier}
		}
	}
	p := NewParseResult(verb)
	p.Who = wm
	p.Adverb = adverb
	p.Message = strings.Join(message, " ")
	p.BodyPart = bodypart
	p.Qualifier = qualifier
	p.Args = argWords
	p.Unrecognized = unrecognized
	p.Unparsed = unparsed
	return p, nil
}

type pronounMatch struct {
	who  *world.Object
	name string
}

// matchPreviouslyParsed connects a pronoun (it, him, her, them) to the
// targets of the previously remembered parse. The replacement name is what
// the parser records in the args instead of the pronoun.
func (s *Soul) matchPreviouslyParsed(player *world.Object, pronoun string) ([]pronounMatch, error) {
	prev := s.previouslyParsed
	if prev == nil {
		return nil, &ParseError{Msg: "It is not clear who or what you're referring to."}
	}
	if pronoun == "them" {
		// plural: any previously mentioned item or living qualifies
		matches := prev.Who.All()
		for _, who := range matches {
			if !s.stillAround(player, who) {
				return nil, parseErrorf("%s is no longer around.", lang.Capital(who.Subjective()))
			}
		}
		if len(matches) == 0 {
			return nil, &ParseError{Msg: "It is not clear who or what you're referring to."}
		}
		out := make([]pronounMatch, len(matches))
		for i, who := range matches {
			out[i] = pronounMatch{who: who, name: who.Name}
		}
		return out, nil
	}
	for _, who := range prev.Who.All() {
		// "it" may refer to an exit in the room
		if pronoun == "it" && player.Location != nil {
			for direction, exit := range player.Location.Exits {
				if exit == who {
					return []pronounMatch{{who: who, name: direction}}, nil
				}
			}
		}
		if pronoun == who.Objective() {
			if s.stillAround(player, who) {
				return []pronounMatch{{who: who, name: who.Name}}, nil
			}
			return nil, parseErrorf("%s is no longer around.", lang.Capital(who.Subjective()))
		}
	}
	return nil, &ParseError{Msg: "It is not clear who or what you're referring to."}
}

func (s *Soul) stillAround(player, who *world.Object) bool {
	if player.SearchItem(who.Name) != nil {
		return true
	}
	return player.Location != nil && player.Location.Livings[who]
}

// CheckNameWithSpaces searches for a multi-word name in the sentence,
// starting at the given word index. The name is extended word by word (up to
// a few words, to bound the runtime) until it matches in the livings, items
// or exits tables, in that order. It returns the matched object, the matched
// name and the number of words it spans, or (nil, "", 0).
func CheckNameWithSpaces(words []string, start int, livings, items, exits map[string]*world.Object) (*world.Object, string, int) {
	name := words[start]
	for wordcount := 1; wordcount < 6; wordcount++ {
		if obj, ok := livings[name]; ok {
			return obj, name, wordcount
		}
		if obj, ok := items[name]; ok {
			return obj, name, wordcount
		}
		if obj, ok := exits[name]; ok {
			return obj, name, wordcount
		}
		if start+wordcount >= len(words) {
			break
		}
		name += " " + words[start+wordcount]
	}
	return nil, "", 0
}

// trimConsumed removes a consumed prefix of n characters from the not yet
// parsed remainder, then strips leading whitespace.
func trimConsumed(unparsed, consumed string) string {
	if len(consumed) >= len(unparsed) {
		return ""
	}
	return strings.TrimLeft(unparsed[len(consumed):], " \t")
}
