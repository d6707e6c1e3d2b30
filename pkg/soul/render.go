package soul

import (
	"fmt"
	"strings"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// VerbResult carries the rendered sentences for the three audiences, and the
// set of targets with the actor removed.
type VerbResult struct {
	Who       map[*world.Object]bool
	PlayerMsg string
	RoomMsg   string
	TargetMsg string
}

// ProcessVerb parses a command string and renders it. It returns the main
// verb (with the qualifier prepended, "fail kick") and the render result.
// A verb listed in externalVerbs is parsed but handed back through
// NonSoulVerbError so the engine can run it.
func (s *Soul) ProcessVerb(player *world.Object, commandstring string, externalVerbs map[string]bool) (string, *VerbResult, error) {
	parsed, err := s.Parse(player, commandstring, externalVerbs)
	if err != nil {
		return "", nil, err
	}
	if externalVerbs[parsed.Verb] {
		return "", nil, &NonSoulVerbError{Parsed: parsed}
	}
	result, err := s.ProcessVerbParsed(player, parsed)
	if err != nil {
		return "", nil, err
	}
	verb := parsed.Verb
	if parsed.Qualifier != "" {
		verb = parsed.Qualifier + " " + verb
	}
	return verb, result, nil
}

// ProcessVerbParsed renders an already parsed command into the messages for
// the player, the room and the targets.
func (s *Soul) ProcessVerbParsed(player *world.Object, parsed *ParseResult) (*VerbResult, error) {
	if player == nil {
		return nil, fmt.Errorf("soul: no player to render for")
	}
	vd, ok := s.verbDef(parsed.Verb)
	if !ok {
		return nil, &UnknownVerbError{Verb: parsed.Verb, Words: []string{}, Qualifier: parsed.Qualifier}
	}

	message := parsed.Message
	adverb := parsed.Adverb
	if message == "" {
		message = vd.Message
	}
	var msg string
	if message != "" {
		if strings.HasPrefix(message, "'") {
			// use the message without quotes around it
			message = Spacify(message[1:])
			msg = message
		} else {
			msg = " '" + message + "'"
			message = " " + message
		}
	}
	if adverb == "" {
		adverb = vd.Adverb
	}
	where := ""
	if parsed.BodyPart != "" {
		where = " " + BodyParts[parsed.BodyPart]
	} else if vd.Where != "" {
		where = " " + vd.Where
	}
	how := Spacify(adverb)

	resultMessages := func(action, actionRoom string) (*VerbResult, error) {
		action = strings.TrimSpace(action)
		actionRoom = strings.TrimSpace(actionRoom)
		if parsed.Qualifier != "" {
			if q, ok := ActionQualifiers[parsed.Qualifier]; ok {
				if q.RoomUsesRoomText {
					actionRoom = fmt.Sprintf(q.Room, actionRoom)
				} else {
					actionRoom = fmt.Sprintf(q.Room, action)
				}
				action = fmt.Sprintf(q.Action, action)
			}
		}
		whos := parsed.Who.All()
		// message seen by the player
		names := make([]string, len(whos))
		for i, t := range whos {
			names[i] = WhoReplacement(player, t, player)
		}
		playerMsg := strings.ReplaceAll(action, " \nWHO", " "+lang.Join(names))
		playerMsg = strings.ReplaceAll(playerMsg, " \nYOUR", " your")
		playerMsg = strings.ReplaceAll(playerMsg, " \nMY", " your")
		// message seen by the rest of the room
		for i, t := range whos {
			names[i] = WhoReplacement(player, t, nil)
		}
		roomMsg := strings.ReplaceAll(actionRoom, " \nWHO", " "+lang.Join(names))
		roomMsg = strings.ReplaceAll(roomMsg, " \nYOUR", " "+player.Possessive())
		roomMsg = strings.ReplaceAll(roomMsg, " \nMY", " "+player.Objective())
		// message seen by the targets
		targetMsg := strings.ReplaceAll(actionRoom, " \nWHO", " you")
		targetMsg = strings.ReplaceAll(targetMsg, " \nYOUR", " "+player.Possessive())
		targetMsg = strings.ReplaceAll(targetMsg, " \nPOSS", " your")
		targetMsg = strings.ReplaceAll(targetMsg, " \nIS", " are")
		targetMsg = strings.ReplaceAll(targetMsg, " \nSUBJ", " you")
		targetMsg = strings.ReplaceAll(targetMsg, " \nMY", " "+player.Objective())
		// fix up POSS, IS and SUBJ in the player and room messages
		if len(whos) == 1 {
			only := whos[0]
			playerMsg = strings.ReplaceAll(playerMsg, " \nIS", " is")
			playerMsg = strings.ReplaceAll(playerMsg, " \nSUBJ", " "+only.Subjective())
			playerMsg = strings.ReplaceAll(playerMsg, " \nPOSS", " "+PossReplacement(player, only, player))
			roomMsg = strings.ReplaceAll(roomMsg, " \nIS", " is")
			roomMsg = strings.ReplaceAll(roomMsg, " \nSUBJ", " "+only.Subjective())
			roomMsg = strings.ReplaceAll(roomMsg, " \nPOSS", " "+PossReplacement(player, only, nil))
		} else {
			for i, t := range whos {
				names[i] = PossReplacement(player, t, player)
			}
			possPlayer := lang.Join(names)
			for i, t := range whos {
				names[i] = PossReplacement(player, t, nil)
			}
			possRoom := lang.Join(names)
			playerMsg = strings.ReplaceAll(playerMsg, " \nIS", " are")
			playerMsg = strings.ReplaceAll(playerMsg, " \nSUBJ", " they")
			playerMsg = strings.ReplaceAll(playerMsg, " \nPOSS", " "+lang.Possessive(possPlayer))
			roomMsg = strings.ReplaceAll(roomMsg, " \nIS", " are")
			roomMsg = strings.ReplaceAll(roomMsg, " \nSUBJ", " they")
			roomMsg = strings.ReplaceAll(roomMsg, " \nPOSS", " "+lang.Possessive(possRoom))
		}
		playerMsg = lang.Fullstop("You " + playerMsg)
		roomMsg = lang.Capital(lang.Fullstop(player.Title + " " + roomMsg))
		targetMsg = lang.Capital(lang.Fullstop(player.Title + " " + targetMsg))
		// the player is not part of the remaining targets
		whoSet := make(map[*world.Object]bool, len(whos))
		for _, t := range whos {
			if t != player {
				whoSet[t] = true
			}
		}
		return &VerbResult{Who: whoSet, PlayerMsg: playerMsg, RoomMsg: roomMsg, TargetMsg: targetMsg}, nil
	}

	// construct the action string
	var action string
	switch vd.Type {
	case DEUX:
		action = vd.Strings[0]
		actionRoom := vd.Strings[1]
		if !checkPerson(action, parsed) {
			return nil, parseErrorf("The verb %s needs a person.", parsed.Verb)
		}
		action = strings.ReplaceAll(action, " \nWHERE", where)
		actionRoom = strings.ReplaceAll(actionRoom, " \nWHERE", where)
		action = strings.ReplaceAll(action, " \nWHAT", message)
		action = strings.ReplaceAll(action, " \nMSG", msg)
		actionRoom = strings.ReplaceAll(actionRoom, " \nWHAT", message)
		actionRoom = strings.ReplaceAll(actionRoom, " \nMSG", msg)
		action = strings.ReplaceAll(action, " \nHOW", how)
		actionRoom = strings.ReplaceAll(actionRoom, " \nHOW", how)
		return resultMessages(action, actionRoom)
	case QUAD:
		var actionRoom string
		if parsed.Who.Len() > 0 {
			action, actionRoom = vd.Strings[2], vd.Strings[3]
		} else {
			action, actionRoom = vd.Strings[0], vd.Strings[1]
		}
		action = strings.ReplaceAll(action, " \nWHERE", where)
		actionRoom = strings.ReplaceAll(actionRoom, " \nWHERE", where)
		action = strings.ReplaceAll(action, " \nWHAT", message)
		action = strings.ReplaceAll(action, " \nMSG", msg)
		actionRoom = strings.ReplaceAll(actionRoom, " \nWHAT", message)
		actionRoom = strings.ReplaceAll(actionRoom, " \nMSG", msg)
		action = strings.ReplaceAll(action, " \nHOW", how)
		actionRoom = strings.ReplaceAll(actionRoom, " \nHOW", how)
		return resultMessages(action, actionRoom)
	case FULL:
		return nil, fmt.Errorf("soul: verb type FULL is not supported")
	case DEFA:
		action = parsed.Verb + "$ \nHOW \nAT"
	case PREV:
		action = parsed.Verb + "$" + Spacify(vd.Strings[0]) + " \nWHO \nHOW"
	case PHYS:
		action = parsed.Verb + "$" + Spacify(vd.Strings[0]) + " \nWHO \nHOW \nWHERE"
	case SHRT:
		action = parsed.Verb + "$" + Spacify(vd.Strings[0]) + " \nHOW"
	case PERS:
		if parsed.Who.Len() > 0 {
			action = vd.Strings[1]
		} else {
			action = vd.Strings[0]
		}
	case SIMP:
		action = vd.Strings[0]
	default:
		return nil, fmt.Errorf("soul: invalid verb type %d for %s", vd.Type, parsed.Verb)
	}

	if parsed.Who.Len() > 0 && len(vd.Strings) > 1 {
		action = strings.ReplaceAll(action, " \nAT", Spacify(vd.Strings[1])+" \nWHO")
	} else {
		action = strings.ReplaceAll(action, " \nAT", "")
	}
	if !checkPerson(action, parsed) {
		return nil, parseErrorf("The verb %s needs a person.", parsed.Verb)
	}
	action = strings.ReplaceAll(action, " \nHOW", how)
	action = strings.ReplaceAll(action, " \nWHERE", where)
	action = strings.ReplaceAll(action, " \nWHAT", message)
	action = strings.ReplaceAll(action, " \nMSG", msg)
	actionRoom := strings.ReplaceAll(action, "$", "s")
	action = strings.ReplaceAll(action, "$", "")
	return resultMessages(action, actionRoom)
}

// WhoReplacement picks the word standing in for a WHO placeholder, as seen
// by the given observer (nil for the rest of the room).
func WhoReplacement(actor, target, observer *world.Object) string {
	if target == actor {
		if actor == observer {
			return "yourself" // you kick yourself
		}
		return actor.Objective() + "self" // ... kicks himself
	}
	if target == observer {
		return "you" // ... kicks you
	}
	return target.Title // ... kicks harry
}

// PossReplacement picks the word standing in for a POSS placeholder, as seen
// by the given observer (nil for the rest of the room).
func PossReplacement(actor, target, observer *world.Object) string {
	if target == actor {
		if actor == observer {
			return "your own" // your own foot
		}
		return actor.Possessive() + " own" // his own foot
	}
	if target == observer {
		return "your" // your foot
	}
	return lang.Possessive(target.Title) // harry's foot
}

// Spacify prefixes the string with a single space if it has contents.
func Spacify(s string) string {
	if s == "" {
		return ""
	}
	return " " + strings.TrimLeft(s, " \t")
}

// checkPerson reports whether the action template can be rendered without a
// target: a template naming WHO or POSS needs at least one.
func checkPerson(action string, parsed *ParseResult) bool {
	if parsed.Who.Len() > 0 {
		return true
	}
	return !strings.Contains(action, "\nWHO") && !strings.Contains(action, "\nPOSS")
}
