package soul_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

func TestRenderGender(t *testing.T) {
	s := soul.New()
	parsed := soul.NewParseResult("stomp")
	player := world.NewLiving("julie", lang.Female)
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "Julie stomps her foot.", result.RoomMsg)
	player = world.NewLiving("fritz", lang.Male)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "Fritz stomps his foot.", result.RoomMsg)
	player = world.NewLiving("zyzzy", lang.Neuter)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "Zyzzy stomps its foot.", result.RoomMsg)
}

func TestMultiTarget(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	philip := world.NewLiving("philip", lang.Male)
	kate := world.NewLiving("kate", lang.Female)
	kate.Title = "Kate"
	cat := world.NewLiving("cat", lang.Neuter)
	cat.Title = "hairy cat"
	targets := []*world.Object{philip, kate, cat}
	// peer
	parsed, err := soul.NewParseResultWho("peer", targets...)
	require.NoError(t, err)
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Len(t, result.Who, 3)
	for _, target := range targets {
		assert.True(t, result.Who[target])
	}
	assert.True(t, len(result.PlayerMsg) > len("You peer at "))
	assert.Equal(t, "You peer at ", result.PlayerMsg[:len("You peer at ")])
	assert.Contains(t, result.PlayerMsg, "philip")
	assert.Contains(t, result.PlayerMsg, "Kate")
	assert.Contains(t, result.PlayerMsg, "hairy cat")
	assert.Contains(t, result.RoomMsg, "Julie peers at ")
	assert.Equal(t, "Julie peers at you.", result.TargetMsg)
	// all/everyone
	room := world.NewLocation("somewhere")
	player.Move(room)
	for _, target := range targets {
		target.Move(room)
	}
	verb, result, err := s.ProcessVerb(player, "smile confusedly at everyone", nil)
	require.NoError(t, err)
	assert.Equal(t, "smile", verb)
	assert.Len(t, result.Who, 3)
	assert.False(t, result.Who[player], "player should not be in targets")
	assert.Contains(t, result.PlayerMsg, "philip")
	assert.Contains(t, result.PlayerMsg, "Kate")
	assert.Contains(t, result.PlayerMsg, "hairy cat")
	assert.NotContains(t, result.PlayerMsg, "yourself")
	assert.NotContains(t, result.RoomMsg, "herself")
	assert.Equal(t, "Julie smiles confusedly at you.", result.TargetMsg)
}

func TestVerbTarget(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	player.Title = "the great Julie, destroyer of worlds"
	room := world.NewLocation("somewhere")
	player.Move(room)
	maxNPC := world.NewLiving("max", lang.Male)
	maxNPC.Move(room)

	verb, result, err := s.ProcessVerb(player, "grin", nil)
	require.NoError(t, err)
	assert.Equal(t, "grin", verb)
	assert.Len(t, result.Who, 0)
	assert.Equal(t, "You grin evilly.", result.PlayerMsg)
	assert.Equal(t, "The great Julie, destroyer of worlds grins evilly.", result.RoomMsg)

	verb, result, err = s.ProcessVerb(player, "grin at max", nil)
	require.NoError(t, err)
	assert.Equal(t, "grin", verb)
	assert.Len(t, result.Who, 1)
	assert.True(t, result.Who[maxNPC])
	assert.Equal(t, "You grin evilly at max.", result.PlayerMsg)
	assert.Equal(t, "The great Julie, destroyer of worlds grins evilly at max.", result.RoomMsg)
	assert.Equal(t, "The great Julie, destroyer of worlds grins evilly at you.", result.TargetMsg)

	parsed, err := s.Parse(player, "grin at all", nil)
	require.NoError(t, err)
	assert.Equal(t, "grin", parsed.Verb)
	assert.Equal(t, []*world.Object{maxNPC}, parsed.Who.All(), "'all' must target only the npc, not the player")
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Len(t, result.Who, 1)
	assert.True(t, result.Who[maxNPC])
	assert.Equal(t, "You grin evilly at max.", result.PlayerMsg)

	parsed, err = s.Parse(player, "grin at all and me", nil)
	require.NoError(t, err)
	assert.Equal(t, []*world.Object{maxNPC, player}, parsed.Who.All(), "'all and me' must include npc and player")
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Len(t, result.Who, 1, "player should no longer be part of the remaining targets")
	assert.True(t, result.Who[maxNPC])
	assert.Contains(t, result.PlayerMsg, "yourself")
	assert.Contains(t, result.PlayerMsg, "max")
}

func TestVerbTargetTypes(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	room := world.NewLocation("somewhere")
	player.Move(room)
	maxNPC := world.NewLiving("max", lang.Male)
	maxNPC.Move(room)
	rock := world.NewItem("rock")
	room.Items[rock] = true
	exitEast := world.NewExit([]string{"east"}, room)
	exitEast.Bind(room)

	// a target can be a living, an item or an exit
	_, result, err := s.ProcessVerb(player, "smile julie", nil)
	require.NoError(t, err)
	assert.Len(t, result.Who, 0, "the player is not part of the result targets")
	_, result, err = s.ProcessVerb(player, "smile max", nil)
	require.NoError(t, err)
	assert.True(t, result.Who[maxNPC], "living max")
	_, result, err = s.ProcessVerb(player, "smile rock", nil)
	require.NoError(t, err)
	assert.True(t, result.Who[rock], "item rock")
	_, result, err = s.ProcessVerb(player, "smile east", nil)
	require.NoError(t, err)
	assert.True(t, result.Who[exitEast], "exit east")
}

func TestMessageQuote(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	// babble
	parsed := soul.NewParseResult("babble")
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You babble something incoherently.", result.PlayerMsg)
	assert.Equal(t, "Julie babbles something incoherently.", result.RoomMsg)
	// babble with message
	parsed.Message = "blurp"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You babble 'blurp' incoherently.", result.PlayerMsg)
	assert.Equal(t, "Julie babbles 'blurp' incoherently.", result.RoomMsg)
}

func TestMessageQuoteParse(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	room := world.NewLocation("somewhere")
	player.Move(room)
	world.NewLiving("max", lang.Male).Move(room)

	_, result, err := s.ProcessVerb(player, `whisper "hello there"`, nil)
	require.NoError(t, err)
	assert.Equal(t, "You whisper 'hello there'.", result.PlayerMsg)
	assert.Equal(t, "Julie whispers 'hello there'.", result.RoomMsg)

	_, result, err = s.ProcessVerb(player, `whisper to max "hello there"`, nil)
	require.NoError(t, err)
	assert.Equal(t, "You whisper 'hello there' to max.", result.PlayerMsg)
	assert.Equal(t, "Julie whispers 'hello there' to max.", result.RoomMsg)

	_, result, err = s.ProcessVerb(player, `whisper softly to max "hello there"`, nil)
	require.NoError(t, err)
	assert.Equal(t, "You whisper 'hello there' softly to max.", result.PlayerMsg)
	assert.Equal(t, "Julie whispers 'hello there' softly to max.", result.RoomMsg)
}

func TestBodypart(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	parsed, err := soul.NewParseResultWho("beep", maxNPC)
	require.NoError(t, err)
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You triumphantly beep max on the nose.", result.PlayerMsg)
	assert.Equal(t, "Julie triumphantly beeps max on the nose.", result.RoomMsg)
	assert.Equal(t, "Julie triumphantly beeps you on the nose.", result.TargetMsg)
	parsed.BodyPart = "arm"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You triumphantly beep max on the arm.", result.PlayerMsg)
	assert.Equal(t, "Julie triumphantly beeps max on the arm.", result.RoomMsg)
	assert.Equal(t, "Julie triumphantly beeps you on the arm.", result.TargetMsg)
	// more than one body part is ambiguous
	room := world.NewLocation("somewhere")
	player.Move(room)
	maxNPC.Move(room)
	_, _, err = s.ProcessVerb(player, "kick max side knee", nil)
	var pe *soul.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "You can't do that both in the side and on the knee.", pe.Msg)
}

func TestQualifier(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	parsed, err := soul.NewParseResultWho("tickle", maxNPC)
	require.NoError(t, err)
	parsed.Qualifier = "fail"
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You try to tickle max, but fail miserably.", result.PlayerMsg)
	assert.Equal(t, "Julie tries to tickle max, but fails miserably.", result.RoomMsg)
	assert.Equal(t, "Julie tries to tickle you, but fails miserably.", result.TargetMsg)
	parsed.Qualifier = "don't"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You don't tickle max.", result.PlayerMsg)
	assert.Equal(t, "Julie doesn't tickle max.", result.RoomMsg)
	assert.Equal(t, "Julie doesn't tickle you.", result.TargetMsg)
	parsed.Qualifier = "suddenly"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You suddenly tickle max.", result.PlayerMsg)
	assert.Equal(t, "Julie suddenly tickles max.", result.RoomMsg)
	assert.Equal(t, "Julie suddenly tickles you.", result.TargetMsg)

	parsed = soul.NewParseResult("mumble")
	parsed.Qualifier = "don't"
	parsed.Message = "I have no idea"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You don't mumble 'I have no idea'.", result.PlayerMsg)
	assert.Equal(t, "Julie doesn't mumble 'I have no idea'.", result.RoomMsg)
	assert.Equal(t, "Julie doesn't mumble 'I have no idea'.", result.TargetMsg)
}

func TestQualifierParse(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	verb, result, err := s.ProcessVerb(player, "dont mumble", nil)
	require.NoError(t, err)
	assert.Equal(t, "don't mumble", verb, "expected spell-corrected qualifier")
	assert.Equal(t, "You don't mumble.", result.PlayerMsg)
	assert.Equal(t, "Julie doesn't mumble.", result.RoomMsg)
	assert.Equal(t, "Julie doesn't mumble.", result.TargetMsg)

	verb, result, err = s.ProcessVerb(player, "don't mumble", nil)
	require.NoError(t, err)
	assert.Equal(t, "don't mumble", verb)
	assert.Equal(t, "You don't mumble.", result.PlayerMsg)

	verb, result, err = s.ProcessVerb(player, `don't mumble "I have no idea"`, nil)
	require.NoError(t, err)
	assert.Equal(t, "don't mumble", verb)
	assert.Equal(t, "You don't mumble 'I have no idea'.", result.PlayerMsg)
	assert.Equal(t, "Julie doesn't mumble 'I have no idea'.", result.RoomMsg)

	verb, result, err = s.ProcessVerb(player, "fail sit", nil)
	require.NoError(t, err)
	assert.Equal(t, "fail sit", verb)
	assert.Equal(t, "You try to sit down, but fail miserably.", result.PlayerMsg)
	assert.Equal(t, "Julie tries to sit down, but fails miserably.", result.RoomMsg)
}

func TestAdverbRendering(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	// more than one adverb is ambiguous
	_, _, err := s.ProcessVerb(player, "cough sickly and noisily", nil)
	var pe *soul.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "You can't do that both sickly and noisily.", pe.Msg)
	// an adverb prefix with a unique match
	_, result, err := s.ProcessVerb(player, "cough sic", nil)
	require.NoError(t, err)
	assert.Equal(t, "You cough sickly.", result.PlayerMsg)
	assert.Equal(t, "Julie coughs sickly.", result.RoomMsg)
	// an adverb prefix with several matches
	_, _, err = s.ProcessVerb(player, "cough si", nil)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "What adverb did you mean: sickly, sideways, signally, significantly, or silently?", pe.Msg)
	// unrecognised words don't render
	_, _, err = s.ProcessVerb(player, "cough hubbabubba", nil)
	require.ErrorAs(t, err, &pe)
}

func TestDEFA(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	// grin
	result, err := s.ProcessVerbParsed(player, soul.NewParseResult("grin"))
	require.NoError(t, err)
	assert.Equal(t, "You grin evilly.", result.PlayerMsg)
	assert.Equal(t, "Julie grins evilly.", result.RoomMsg)
	// drool
	parsed, err := soul.NewParseResultWho("drool", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You drool on max.", result.PlayerMsg)
	assert.Equal(t, "Julie drools on max.", result.RoomMsg)
	assert.Equal(t, "Julie drools on you.", result.TargetMsg)
}

func TestPREV(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	// peer
	parsed, err := soul.NewParseResultWho("peer", maxNPC)
	require.NoError(t, err)
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You peer at max.", result.PlayerMsg)
	assert.Equal(t, "Julie peers at max.", result.RoomMsg)
	assert.Equal(t, "Julie peers at you.", result.TargetMsg)
	// tease
	parsed, err = soul.NewParseResultWho("tease", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You tease max.", result.PlayerMsg)
	assert.Equal(t, "Julie teases max.", result.RoomMsg)
	assert.Equal(t, "Julie teases you.", result.TargetMsg)
	// turn
	parsed, err = soul.NewParseResultWho("turn", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You turn your head towards max.", result.PlayerMsg)
	assert.Equal(t, "Julie turns her head towards max.", result.RoomMsg)
	assert.Equal(t, "Julie turns her head towards you.", result.TargetMsg)
}

func TestPHYS(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	// requires a person
	_, err := s.ProcessVerbParsed(player, soul.NewParseResult("bonk"))
	var pe *soul.ParseError
	require.ErrorAs(t, err, &pe)
	// pounce
	parsed, err := soul.NewParseResultWho("pounce", maxNPC)
	require.NoError(t, err)
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You pounce max playfully.", result.PlayerMsg)
	assert.Equal(t, "Julie pounces max playfully.", result.RoomMsg)
	assert.Equal(t, "Julie pounces you playfully.", result.TargetMsg)
	// hold
	parsed, err = soul.NewParseResultWho("hold", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You hold max in your arms.", result.PlayerMsg)
	assert.Equal(t, "Julie holds max in her arms.", result.RoomMsg)
	assert.Equal(t, "Julie holds you in her arms.", result.TargetMsg)
}

func TestSHRT(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	// faint
	parsed := soul.NewParseResult("faint")
	parsed.Adverb = "slowly"
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You faint slowly.", result.PlayerMsg)
	assert.Equal(t, "Julie faints slowly.", result.RoomMsg)
	// cheer
	result, err = s.ProcessVerbParsed(player, soul.NewParseResult("cheer"))
	require.NoError(t, err)
	assert.Equal(t, "You cheer enthusiastically.", result.PlayerMsg)
	assert.Equal(t, "Julie cheers enthusiastically.", result.RoomMsg)
}

func TestPERS(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	// fear, without target
	result, err := s.ProcessVerbParsed(player, soul.NewParseResult("fear"))
	require.NoError(t, err)
	assert.Equal(t, "You shiver with fear.", result.PlayerMsg)
	assert.Equal(t, "Julie shivers with fear.", result.RoomMsg)
	// fear, with target
	parsed, err := soul.NewParseResultWho("fear", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You fear max.", result.PlayerMsg)
	assert.Equal(t, "Julie fears max.", result.RoomMsg)
	assert.Equal(t, "Julie fears you.", result.TargetMsg)
}

func TestSIMP(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)

	// babble without arguments
	result, err := s.ProcessVerbParsed(player, soul.NewParseResult("babble"))
	require.NoError(t, err)
	assert.Equal(t, "You babble something incoherently.", result.PlayerMsg)
	assert.Equal(t, "Julie babbles something incoherently.", result.RoomMsg)
	// babble to a target, with adverb and message
	parsed, err := soul.NewParseResultWho("babble", maxNPC)
	require.NoError(t, err)
	parsed.Adverb = "angrily"
	parsed.Message = "why"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You babble 'why' angrily to max.", result.PlayerMsg)
	assert.Equal(t, "Julie babbles 'why' angrily to max.", result.RoomMsg)
	assert.Equal(t, "Julie babbles 'why' angrily to you.", result.TargetMsg)
	// ask
	parsed, err = soul.NewParseResultWho("ask", maxNPC)
	require.NoError(t, err)
	parsed.Message = "are you happy"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You ask max: are you happy?", result.PlayerMsg)
	assert.Equal(t, "Julie asks max: are you happy?", result.RoomMsg)
	assert.Equal(t, "Julie asks you: are you happy?", result.TargetMsg)
	// puzzle without target
	result, err = s.ProcessVerbParsed(player, soul.NewParseResult("puzzle"))
	require.NoError(t, err)
	assert.Equal(t, "You look puzzled.", result.PlayerMsg)
	assert.Equal(t, "Julie looks puzzled.", result.RoomMsg)
	// puzzle at a target
	parsed, err = soul.NewParseResultWho("puzzle", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You look puzzled at max.", result.PlayerMsg)
	assert.Equal(t, "Julie looks puzzled at max.", result.RoomMsg)
	assert.Equal(t, "Julie looks puzzled at you.", result.TargetMsg)
	// chant with an explicit message
	parsed = soul.NewParseResult("chant")
	parsed.Adverb = "merrily"
	parsed.Message = "tralala"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You merrily chant: tralala.", result.PlayerMsg)
	assert.Equal(t, "Julie merrily chants: tralala.", result.RoomMsg)
	// chant with its default message
	result, err = s.ProcessVerbParsed(player, soul.NewParseResult("chant"))
	require.NoError(t, err)
	assert.Equal(t, "You chant: Hare Krishna Krishna Hare Hare.", result.PlayerMsg)
	assert.Equal(t, "Julie chants: Hare Krishna Krishna Hare Hare.", result.RoomMsg)
}

func TestDEUX(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	// die
	parsed := soul.NewParseResult("die")
	parsed.Adverb = "suddenly"
	result, err := s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You suddenly fall down and play dead.", result.PlayerMsg)
	assert.Equal(t, "Julie suddenly falls to the ground, dead.", result.RoomMsg)
	// ah
	parsed = soul.NewParseResult("ah")
	parsed.Adverb = "rudely"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You go 'ah' rudely.", result.PlayerMsg)
	assert.Equal(t, "Julie goes 'ah' rudely.", result.RoomMsg)
	// the verb needs a person
	_, _, err = s.ProcessVerb(player, "touch", nil)
	var pe *soul.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "The verb touch needs a person.", pe.Msg)
}

func TestQUAD(t *testing.T) {
	s := soul.New()
	player := world.NewLiving("julie", lang.Female)
	maxNPC := world.NewLiving("max", lang.Male)
	// watch, without target
	result, err := s.ProcessVerbParsed(player, soul.NewParseResult("watch"))
	require.NoError(t, err)
	assert.Equal(t, "You watch the surroundings carefully.", result.PlayerMsg)
	assert.Equal(t, "Julie watches the surroundings carefully.", result.RoomMsg)
	// watch, with target
	parsed, err := soul.NewParseResultWho("watch", maxNPC)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Equal(t, "You watch max carefully.", result.PlayerMsg)
	assert.Equal(t, "Julie watches max carefully.", result.RoomMsg)
	assert.Equal(t, "Julie watches you carefully.", result.TargetMsg)
	// ayt
	parsed.Verb = "ayt"
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.True(t, result.Who[maxNPC])
	assert.Equal(t, "You wave your hand in front of max's face, is he there?", result.PlayerMsg)
	assert.Equal(t, "Julie waves her hand in front of max's face, is he there?", result.RoomMsg)
	assert.Equal(t, "Julie waves her hand in front of your face, are you there?", result.TargetMsg)
	// ayt at several targets including yourself
	parsed, err = soul.NewParseResultWho("ayt", maxNPC, player)
	require.NoError(t, err)
	result, err = s.ProcessVerbParsed(player, parsed)
	require.NoError(t, err)
	assert.Contains(t, result.PlayerMsg, "You wave your hand in front of ")
	assert.Contains(t, result.PlayerMsg, "max's")
	assert.Contains(t, result.PlayerMsg, "your own")
	assert.Contains(t, result.RoomMsg, "Julie waves her hand in front of ")
	assert.Contains(t, result.RoomMsg, "max's")
	assert.Contains(t, result.RoomMsg, "her own")
	assert.Equal(t, "Julie waves her hand in front of your face, are you there?", result.TargetMsg)
}
