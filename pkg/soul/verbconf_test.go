package soul_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

const socialsYaml = `
socials:
  - verb: moonwalk
    type: SHRT
    adverb: smoothly
    strings:
      - "backwards"
  - verb: noogie
    type: PHYS
    where: "on the head"
    strings:
      - ""
  - verb: quack
    type: DEFA
    adverb: loudly
    strings:
      - ""
      - "at"
`

func TestParseSocials(t *testing.T) {
	defs, err := soul.ParseSocials([]byte(socialsYaml))
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, soul.SHRT, defs["moonwalk"].Type)
	assert.Equal(t, "smoothly", defs["moonwalk"].Adverb)
	assert.Equal(t, soul.PHYS, defs["noogie"].Type)
	assert.Equal(t, "on the head", defs["noogie"].Where)
	assert.Equal(t, []string{"", "at"}, defs["quack"].Strings)
}

func TestParseSocialsErrors(t *testing.T) {
	_, err := soul.ParseSocials([]byte("socials: [\n"))
	assert.Error(t, err)
	_, err = soul.ParseSocials([]byte("socials:\n  - verb: ''\n    type: SHRT\n    strings: ['']\n"))
	assert.ErrorContains(t, err, "missing verb name")
	_, err = soul.ParseSocials([]byte("socials:\n  - verb: zap\n    type: BOGUS\n"))
	assert.ErrorContains(t, err, "unknown verb type")
	_, err = soul.ParseSocials([]byte("socials:\n  - verb: zap\n    type: FULL\n"))
	assert.ErrorContains(t, err, "not supported")
	_, err = soul.ParseSocials([]byte("socials:\n  - verb: zap\n    type: QUAD\n    strings: ['a', 'b']\n"))
	assert.ErrorContains(t, err, "at least 4 template strings")
	_, err = soul.ParseSocials([]byte("socials:\n  - verb: zap\n    type: SHRT\n    strings: ['']\n  - verb: zap\n    type: SHRT\n    strings: ['']\n"))
	assert.ErrorContains(t, err, "defined twice")
}

func TestCatalogLookup(t *testing.T) {
	c := soul.NewCatalog()
	// builtin verbs resolve
	vd, ok := c.Lookup("smile")
	require.True(t, ok)
	assert.Equal(t, soul.DEFA, vd.Type)
	_, ok = c.Lookup("moonwalk")
	assert.False(t, ok)
	// custom verbs layer on top
	require.NoError(t, c.Register("moonwalk", soul.VerbDef{Type: soul.SHRT, Strings: []string{"backwards"}}))
	_, ok = c.Lookup("moonwalk")
	assert.True(t, ok)
	// a custom verb shadows a builtin one
	require.NoError(t, c.Register("smile", soul.VerbDef{Type: soul.DEFA, Adverb: "strangely", Strings: []string{"", "at"}}))
	vd, ok = c.Lookup("smile")
	require.True(t, ok)
	assert.Equal(t, "strangely", vd.Adverb)
	assert.Equal(t, []string{"moonwalk", "smile"}, c.CustomNames())
	// register validates
	err := c.Register("two words", soul.VerbDef{Type: soul.SHRT, Strings: []string{""}})
	assert.Error(t, err)
	err = c.Register("zap", soul.VerbDef{Type: soul.PERS, Strings: []string{"zap$"}})
	assert.ErrorContains(t, err, "at least 2 template strings")
}

func TestCatalogLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(socialsYaml), 0o644))
	c := soul.NewCatalog()
	require.NoError(t, c.Register("oldsocial", soul.VerbDef{Type: soul.SHRT, Strings: []string{""}}))
	require.NoError(t, c.Load(path))
	// the custom layer is replaced wholesale
	_, ok := c.Lookup("oldsocial")
	assert.False(t, ok)
	assert.Equal(t, []string{"moonwalk", "noogie", "quack"}, c.CustomNames())
	// a broken file leaves the catalog untouched
	require.NoError(t, os.WriteFile(path, []byte("socials: [\n"), 0o644))
	require.Error(t, c.Load(path))
	_, ok = c.Lookup("moonwalk")
	assert.True(t, ok)
	require.Error(t, c.Load(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestCatalogRendering(t *testing.T) {
	c := soul.NewCatalog()
	defs, err := soul.ParseSocials([]byte(socialsYaml))
	require.NoError(t, err)
	for name, def := range defs {
		require.NoError(t, c.Register(name, def))
	}
	s := soul.NewWithCatalog(c)
	player := world.NewLiving("julie", lang.Female)
	room := world.NewLocation("somewhere")
	player.Move(room)
	maxNPC := world.NewLiving("max", lang.Male)
	maxNPC.Move(room)

	_, result, err := s.ProcessVerb(player, "moonwalk", nil)
	require.NoError(t, err)
	assert.Equal(t, "You moonwalk backwards smoothly.", result.PlayerMsg)
	assert.Equal(t, "Julie moonwalks backwards smoothly.", result.RoomMsg)

	_, result, err = s.ProcessVerb(player, "noogie max", nil)
	require.NoError(t, err)
	assert.Equal(t, "You noogie max on the head.", result.PlayerMsg)
	assert.Equal(t, "Julie noogies max on the head.", result.RoomMsg)
	assert.Equal(t, "Julie noogies you on the head.", result.TargetMsg)

	_, result, err = s.ProcessVerb(player, "quack at max", nil)
	require.NoError(t, err)
	assert.Equal(t, "You quack loudly at max.", result.PlayerMsg)
}
