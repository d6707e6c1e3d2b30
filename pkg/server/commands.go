package server

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/crystal-mush/gosoul/pkg/events"
	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// ExternalVerbs are the commands handled by the engine rather than the soul.
// The parser still resolves their targets; NonSoulVerbError and the verb
// check below reroute them here.
var ExternalVerbs = map[string]bool{
	"look":      true,
	"examine":   true,
	"inventory": true,
	"say":       true,
	"who":       true,
	"help":      true,
	"socials":   true,
	"social":    true,
	"quit":      true,
}

// Dispatch parses one in-world command line and routes it: soul verbs are
// rendered and emitted to the room, engine commands and exits go to their
// handlers, parse failures are reported to the player.
func (g *Game) Dispatch(s *Session, line string) {
	if line == "" {
		return
	}
	s.CmdCount++
	if g.Metrics != nil {
		g.Metrics.commandsTotal.Inc()
	}

	parsed, err := s.Soul.Parse(s.Player, line, ExternalVerbs)
	if err != nil {
		var nonSoul *soul.NonSoulVerbError
		if errors.As(err, &nonSoul) {
			g.runCommand(s, nonSoul.Parsed)
			return
		}
		g.reportError(s, err)
		return
	}
	if ExternalVerbs[parsed.Verb] {
		g.runCommand(s, parsed)
		return
	}

	result, err := s.Soul.ProcessVerbParsed(s.Player, parsed)
	if err != nil {
		g.reportError(s, err)
		return
	}
	s.Soul.RememberParse(parsed)
	verb := parsed.Verb
	if parsed.Qualifier != "" {
		verb = parsed.Qualifier + " " + verb
	}
	g.Bus.EmitAction(s.Player, verb, result)
	if g.Metrics != nil {
		g.Metrics.soulActionsTotal.Inc()
	}
}

// reportError translates a parse failure into a message for the player.
func (g *Game) reportError(s *Session, err error) {
	var parseErr *soul.ParseError
	if errors.As(err, &parseErr) {
		if g.Metrics != nil {
			g.Metrics.parseErrorsTotal.Inc()
		}
		s.Send(parseErr.Msg)
		return
	}
	var unknown *soul.UnknownVerbError
	if errors.As(err, &unknown) {
		if g.Metrics != nil {
			g.Metrics.unknownVerbsTotal.Inc()
		}
		if suggestion := SuggestVerb(unknown.Verb, g.KnownVerbs()); suggestion != "" {
			s.Send(fmt.Sprintf("The verb %q is unknown. Maybe you meant %q?", unknown.Verb, suggestion))
		} else {
			s.Send(fmt.Sprintf("The verb %q is unknown.", unknown.Verb))
		}
		return
	}
	log.Printf("[%d] command error: %v", s.ID, err)
	s.Send("That doesn't work.")
}

// KnownVerbs returns all verbs a player can type: soul verbs, custom socials
// and engine commands.
func (g *Game) KnownVerbs() []string {
	names := g.Catalog.Names()
	for verb := range ExternalVerbs {
		names = append(names, verb)
	}
	sort.Strings(names)
	return names
}

func (g *Game) runCommand(s *Session, parsed *soul.ParseResult) {
	if target := parsed.Who1(); target != nil && target.Kind == world.KindExit {
		g.movePlayer(s, parsed.Verb, target)
		return
	}
	switch parsed.Verb {
	case "look":
		g.showRoom(s)
	case "examine":
		g.cmdExamine(s, parsed)
	case "inventory":
		g.cmdInventory(s)
	case "say":
		g.cmdSay(s, parsed)
	case "who":
		g.cmdWho(s)
	case "help":
		g.cmdHelp(s)
	case "socials":
		g.cmdSocials(s)
	case "social":
		g.cmdSocial(s, parsed)
	case "quit":
		s.Send("Goodbye.")
		g.RemoveSession(s)
	default:
		s.Send(fmt.Sprintf("The command %q is not implemented.", parsed.Verb))
	}
}

// movePlayer walks the player through an exit and shows the new room.
func (g *Game) movePlayer(s *Session, direction string, exit *world.Object) {
	if exit.Target == nil {
		s.Send("That way is closed.")
		return
	}
	player := s.Player
	from := player.Location
	if from != nil {
		g.Bus.EmitToRoom(from, events.Event{
			Type:   events.EvMove,
			Source: player,
			Text:   lang.Capital(player.Title) + " goes " + direction + ".",
		}, player)
	}
	player.Move(exit.Target)
	g.Bus.EmitToRoom(exit.Target, events.Event{
		Type:   events.EvMove,
		Source: player,
		Text:   lang.Capital(player.Title) + " arrives.",
	}, player)
	g.showRoom(s)
}

// showRoom sends the room description: title, occupants, items and exits.
func (g *Game) showRoom(s *Session) {
	room := s.Player.Location
	if room == nil {
		s.Send("You float in a formless void.")
		return
	}
	s.Send("[" + room.Title + "]")

	var names []string
	for living := range room.Livings {
		if living != s.Player {
			names = append(names, living.Title)
		}
	}
	sort.Strings(names)
	if len(names) > 0 {
		s.Send("Present: " + lang.Join(names) + ".")
	}

	names = names[:0]
	for item := range room.Items {
		names = append(names, lang.A(item.Title))
	}
	sort.Strings(names)
	if len(names) > 0 {
		s.Send("You see " + lang.Join(names) + ".")
	}

	names = names[:0]
	seen := make(map[*world.Object]bool)
	for _, exit := range room.Exits {
		if !seen[exit] {
			seen[exit] = true
			names = append(names, exit.Name)
		}
	}
	sort.Strings(names)
	if len(names) > 0 {
		s.Send("Exits: " + strings.Join(names, ", ") + ".")
	}
}

func (g *Game) cmdExamine(s *Session, parsed *soul.ParseResult) {
	target := parsed.Who1()
	if target == nil && len(parsed.Args) > 0 {
		target = s.Player.SearchItem(parsed.Args[0])
	}
	if target == nil {
		if len(parsed.Args) == 0 {
			g.showRoom(s)
			return
		}
		s.Send(fmt.Sprintf("There is no %s here.", parsed.Args[0]))
		return
	}
	switch target.Kind {
	case world.KindLiving:
		s.Send(fmt.Sprintf("%s. %s looks unremarkable.",
			lang.Capital(target.Title), lang.Capital(target.Subjective())))
	case world.KindExit:
		s.Send("It leads " + target.Name + ".")
	default:
		s.Send("That is " + lang.A(target.Title) + ".")
	}
}

func (g *Game) cmdInventory(s *Session) {
	items := s.Player.Inventory()
	if len(items) == 0 {
		s.Send("You are empty-handed.")
		return
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = lang.A(item.Title)
	}
	sort.Strings(names)
	s.Send("You are carrying " + lang.Join(names) + ".")
}

func (g *Game) cmdSay(s *Session, parsed *soul.ParseResult) {
	msg := parsed.Message
	if msg == "" {
		msg = parsed.Unparsed
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		s.Send("Say what?")
		return
	}
	player := s.Player
	s.Send("You say: " + msg)
	g.Bus.EmitToRoom(player.Location, events.Event{
		Type:   events.EvSay,
		Source: player,
		Text:   lang.Capital(player.Title) + " says: " + msg,
	}, player)
}

func (g *Game) cmdWho(s *Session) {
	var names []string
	for _, other := range g.Sessions() {
		if other.Player != nil {
			names = append(names, other.Player.Title)
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		s.Send("Nobody is connected.")
		return
	}
	s.Send(fmt.Sprintf("Connected: %s. (%d %s)",
		lang.Join(names), len(names), lang.Pluralize("player", len(names))))
}

func (g *Game) cmdHelp(s *Session) {
	verbs := g.Catalog.Names()
	s.Send("Commands: look, examine, inventory, say, who, socials, social, help, quit.")
	s.Send("Movement: type an exit name, or go/enter/climb/crawl plus a direction.")
	s.Send(fmt.Sprintf("Everything else is tried as one of the %d soul verbs, for example:", len(verbs)))
	s.Send("  smile, grin evilly at max, fail tickle max, whisper to max \"psst\".")
}

func (g *Game) cmdSocials(s *Session) {
	custom := g.Catalog.CustomNames()
	if len(custom) == 0 {
		s.Send("No custom socials are defined.")
		return
	}
	s.Send("Custom socials: " + strings.Join(custom, ", ") + ".")
}

// cmdSocial defines or removes a custom social at runtime:
//
//	social add <verb> <TYPE> <template> [template...]
//	social del <verb>
//
// Template strings may carry the placeholder markers with escaped newlines
// ("moonwalk$ \nHOW"); quoted templates keep their spaces.
func (g *Game) cmdSocial(s *Session, parsed *soul.ParseResult) {
	words := lang.Split(parsed.Unparsed)
	if len(words) < 2 {
		s.Send("Usage: social add <verb> <TYPE> <template...> | social del <verb>")
		return
	}
	verb := strings.ToLower(words[1])
	switch words[0] {
	case "add":
		if len(words) < 3 {
			s.Send("Usage: social add <verb> <TYPE> <template...>")
			return
		}
		vtype, ok := soul.ParseVerbType(words[2])
		if !ok {
			s.Send(fmt.Sprintf("Unknown verb type %q. One of: DEUX QUAD DEFA PREV PHYS SHRT PERS SIMP.", words[2]))
			return
		}
		templates := make([]string, 0, len(words)-3)
		for _, w := range words[3:] {
			templates = append(templates, strings.ReplaceAll(w, `\n`, "\n"))
		}
		def := soul.VerbDef{Type: vtype, Strings: templates}
		if err := g.Catalog.Register(verb, def); err != nil {
			s.Send(err.Error())
			return
		}
		if g.Store != nil {
			if err := g.Store.Put(verb, def); err != nil {
				log.Printf("store: save social %s: %v", verb, err)
			}
		}
		s.Send(fmt.Sprintf("The social %q is now available.", verb))
	case "del":
		if g.Store != nil {
			if err := g.Store.Delete(verb); err != nil {
				log.Printf("store: delete social %s: %v", verb, err)
			}
		}
		if err := g.reloadCustomSocials(); err != nil {
			s.Send("Could not reload the socials: " + err.Error())
			return
		}
		s.Send(fmt.Sprintf("The social %q is gone.", verb))
	default:
		s.Send("Usage: social add <verb> <TYPE> <template...> | social del <verb>")
	}
}

// reloadCustomSocials rebuilds the custom layer from the file and the store,
// dropping anything deleted from either.
func (g *Game) reloadCustomSocials() error {
	if g.Conf.SocialsFile != "" {
		if err := g.Catalog.Load(g.Conf.SocialsFile); err != nil {
			return err
		}
	} else {
		g.Catalog.Clear()
	}
	if g.Store != nil {
		if _, err := g.Store.LoadInto(g.Catalog); err != nil {
			return err
		}
	}
	return nil
}
