package soul

// VerbType selects how a verb's action text is assembled. The four-letter
// tags are inherited from the classic LPC soul verb table.
type VerbType int

const (
	DEUX VerbType = iota // explicit actor/room template pair
	QUAD                 // two template pairs: without and with a target
	FULL                 // reserved, unused
	DEFA                 // default: "<verb>$ \nHOW \nAT"
	PREV                 // "<verb>$<suffix> \nWHO \nHOW"
	PHYS                 // "<verb>$<suffix> \nWHO \nHOW \nWHERE"
	SHRT                 // "<verb>$<suffix> \nHOW"
	PERS                 // one of two templates, depending on target presence
	SIMP                 // a single fixed template
)

// String returns the table tag for the verb type.
func (t VerbType) String() string {
	switch t {
	case DEUX:
		return "DEUX"
	case QUAD:
		return "QUAD"
	case FULL:
		return "FULL"
	case DEFA:
		return "DEFA"
	case PREV:
		return "PREV"
	case PHYS:
		return "PHYS"
	case SHRT:
		return "SHRT"
	case PERS:
		return "PERS"
	case SIMP:
		return "SIMP"
	}
	return "?"
}

// VerbDef is one entry of the verb catalog.
//
// Template strings contain newline-prefixed placeholders (" \nWHO",
// " \nPOSS", " \nIS", " \nSUBJ", " \nYOUR", " \nMY", " \nHOW", " \nWHERE",
// " \nWHAT", " \nMSG", " \nAT") and an optional trailing "$" marking the
// verb-conjugation point. The meaning of Strings depends on Type:
//
//	SIMP:      [template, AT-preposition?]
//	PERS:      [template-without-target, template-with-target]
//	SHRT/PHYS/PREV: [suffix inserted after the verb]
//	DEFA:      ["", AT-preposition?]
//	DEUX:      [actor-template, room-template]
//	QUAD:      [actor-no-target, room-no-target, actor-target, room-target]
//
// A default Message starting with a single quote is rendered without the
// surrounding quotes.
type VerbDef struct {
	Type    VerbType
	Adverb  string // default adverb
	Message string // default message
	Where   string // default body-part phrase
	Strings []string
}

// Verbs is the builtin catalog of soul verbs.
var Verbs = map[string]VerbDef{
	// --- drama and bodily functions ---
	"ah":      {Type: DEUX, Strings: []string{"go 'ah' \nHOW", "goes 'ah' \nHOW"}},
	"babble":  {Type: SIMP, Adverb: "incoherently", Message: "'something", Strings: []string{"babble$ \nMSG \nHOW \nAT", "to"}},
	"blush":   {Type: SHRT, Adverb: "profusely", Strings: []string{""}},
	"burp":    {Type: SHRT, Adverb: "rudely", Strings: []string{""}},
	"cough":   {Type: SHRT, Adverb: "noisily", Strings: []string{""}},
	"die":     {Type: DEUX, Strings: []string{" \nHOW fall down and play dead", " \nHOW falls to the ground, dead"}},
	"drool":   {Type: DEFA, Strings: []string{"", "on"}},
	"faint":   {Type: SHRT, Strings: []string{""}},
	"fart":    {Type: DEFA, Adverb: "loudly", Strings: []string{"", "at"}},
	"gulp":    {Type: SHRT, Adverb: "nervously", Strings: []string{""}},
	"hiccup":  {Type: SHRT, Strings: []string{""}},
	"pant":    {Type: SHRT, Adverb: "heavily", Strings: []string{""}},
	"puke":    {Type: DEFA, Strings: []string{"", "on"}},
	"shiver":  {Type: SHRT, Strings: []string{""}},
	"shudder": {Type: SHRT, Strings: []string{""}},
	"sneeze":  {Type: SHRT, Adverb: "loudly", Strings: []string{""}},
	"snore":   {Type: SHRT, Adverb: "loudly", Strings: []string{""}},
	"sweat":   {Type: SHRT, Adverb: "profusely", Strings: []string{""}},
	"tremble": {Type: SHRT, Strings: []string{""}},
	"wheeze":  {Type: SHRT, Strings: []string{""}},
	"yawn":    {Type: DEFA, Strings: []string{"", "at"}},

	// --- expressions ---
	"beam":    {Type: DEFA, Adverb: "happily", Strings: []string{"", "at"}},
	"blink":   {Type: DEFA, Strings: []string{"", "at"}},
	"frown":   {Type: DEFA, Strings: []string{"", "at"}},
	"gasp":    {Type: DEFA, Strings: []string{"", "at"}},
	"glare":   {Type: DEFA, Adverb: "stonily", Strings: []string{"", "at"}},
	"grimace": {Type: SHRT, Strings: []string{""}},
	"grin":    {Type: DEFA, Adverb: "evilly", Strings: []string{"", "at"}},
	"leer":    {Type: DEFA, Strings: []string{"", "at"}},
	"pout":    {Type: DEFA, Strings: []string{"", "at"}},
	"scowl":   {Type: DEFA, Adverb: "darkly", Strings: []string{"", "at"}},
	"smile":   {Type: DEFA, Adverb: "happily", Strings: []string{"", "at"}},
	"smirk":   {Type: DEFA, Strings: []string{"", "at"}},
	"sneer":   {Type: DEFA, Strings: []string{"", "at"}},
	"squint":  {Type: DEFA, Adverb: "suspiciously", Strings: []string{"", "at"}},
	"stare":   {Type: DEFA, Strings: []string{"", "at"}},
	"wink":    {Type: DEFA, Adverb: "suggestively", Strings: []string{"", "at"}},

	// --- sounds ---
	"cackle":  {Type: SHRT, Adverb: "gleefully", Strings: []string{""}},
	"chuckle": {Type: SHRT, Strings: []string{""}},
	"croak":   {Type: DEFA, Strings: []string{"", "at"}},
	"giggle":  {Type: SHRT, Adverb: "merrily", Strings: []string{""}},
	"groan":   {Type: DEFA, Strings: []string{"", "at"}},
	"growl":   {Type: DEFA, Strings: []string{"", "at"}},
	"grunt":   {Type: DEFA, Strings: []string{"", "at"}},
	"howl":    {Type: DEFA, Strings: []string{"", "at"}},
	"hum":     {Type: SHRT, Strings: []string{""}},
	"laugh":   {Type: DEFA, Strings: []string{"", "at"}},
	"moan":    {Type: DEFA, Strings: []string{"", "at"}},
	"purr":    {Type: DEFA, Strings: []string{"", "at"}},
	"snarl":   {Type: DEFA, Strings: []string{"", "at"}},
	"snicker": {Type: DEFA, Strings: []string{"", "at"}},
	"sniff":   {Type: DEFA, Strings: []string{"", "at"}},
	"snort":   {Type: DEFA, Strings: []string{"", "at"}},
	"sob":     {Type: SHRT, Strings: []string{""}},
	"squeak":  {Type: DEFA, Strings: []string{"", "at"}},
	"squeal":  {Type: DEFA, Strings: []string{"", "at"}},
	"wail":    {Type: SHRT, Strings: []string{""}},
	"whistle": {Type: DEFA, Adverb: "appreciatively", Strings: []string{"", "at"}},

	// --- movement and posture ---
	"bounce":  {Type: DEFA, Adverb: "up and down", Strings: []string{"", "around"}},
	"caper":   {Type: DEFA, Adverb: "merrily", Strings: []string{"", "around"}},
	"cringe":  {Type: DEFA, Strings: []string{"", "from"}},
	"dance":   {Type: DEFA, Strings: []string{"", "with"}},
	"hop":     {Type: DEFA, Adverb: "excitedly", Strings: []string{"", "around"}},
	"jump":    {Type: DEFA, Adverb: "high", Strings: []string{"", "around"}},
	"pace":    {Type: DEFA, Adverb: "impatiently", Strings: []string{"", "around"}},
	"sit":     {Type: SHRT, Strings: []string{"down"}},
	"stomp":   {Type: PERS, Strings: []string{"stomp$ \nYOUR foot \nHOW", "stomp$ \nYOUR foot at \nWHO \nHOW"}},
	"stretch": {Type: DEUX, Strings: []string{"stretch \nHOW", "stretches \nHOW"}},
	"stumble": {Type: SHRT, Strings: []string{""}},
	"swagger": {Type: DEFA, Strings: []string{"", "around"}},
	"twitch":  {Type: SHRT, Adverb: "nervously", Strings: []string{""}},
	"wiggle":  {Type: DEFA, Strings: []string{"", "at"}},
	"wobble":  {Type: DEFA, Strings: []string{"", "around"}},

	// --- social, with a target ---
	"caress":       {Type: PREV, Strings: []string{""}},
	"comfort":      {Type: PREV, Strings: []string{""}},
	"congratulate": {Type: PREV, Strings: []string{""}},
	"cuddle":       {Type: PREV, Strings: []string{"up against"}},
	"curse":        {Type: PREV, Strings: []string{""}},
	"envy":         {Type: PREV, Strings: []string{""}},
	"forgive":      {Type: PREV, Strings: []string{""}},
	"greet":        {Type: PREV, Strings: []string{""}},
	"hug":          {Type: PREV, Strings: []string{""}},
	"kiss":         {Type: PREV, Strings: []string{""}},
	"nudge":        {Type: PHYS, Adverb: "suggestively", Strings: []string{""}},
	"pamper":       {Type: PREV, Strings: []string{""}},
	"peer":         {Type: PREV, Strings: []string{"at"}},
	"pet":          {Type: PREV, Strings: []string{""}},
	"praise":       {Type: PREV, Strings: []string{""}},
	"salute":       {Type: PREV, Strings: []string{""}},
	"squeeze":      {Type: PREV, Adverb: "fondly", Strings: []string{""}},
	"tease":        {Type: PREV, Strings: []string{""}},
	"thank":        {Type: PREV, Adverb: "gratefully", Strings: []string{""}},
	"tickle":       {Type: PREV, Strings: []string{""}},
	"turn":         {Type: PREV, Strings: []string{"\nYOUR head towards"}},
	"welcome":      {Type: PREV, Adverb: "warmly", Strings: []string{""}},
	"worship":      {Type: PREV, Strings: []string{""}},

	// --- physical, with a body part ---
	"beep":   {Type: SIMP, Adverb: "triumphantly", Where: "on the nose", Strings: []string{" \nHOW beep$ \nWHO \nWHERE"}},
	"bite":   {Type: PHYS, Where: "on the arm", Strings: []string{""}},
	"bonk":   {Type: PHYS, Where: "on the head", Strings: []string{""}},
	"hold":   {Type: PHYS, Where: "in \nYOUR arms", Strings: []string{""}},
	"kick":   {Type: PHYS, Strings: []string{""}},
	"pat":    {Type: PHYS, Where: "on the head", Strings: []string{""}},
	"pinch":  {Type: PHYS, Strings: []string{""}},
	"poke":   {Type: PHYS, Where: "in the side", Strings: []string{""}},
	"pounce": {Type: PHYS, Adverb: "playfully", Strings: []string{""}},
	"punch":  {Type: PHYS, Where: "on the nose", Strings: []string{""}},
	"push":   {Type: PHYS, Strings: []string{""}},
	"shove":  {Type: PHYS, Strings: []string{""}},
	"slap":   {Type: PHYS, Where: "in the face", Strings: []string{""}},
	"spank":  {Type: PHYS, Where: "on the butt", Strings: []string{""}},
	"tackle": {Type: PHYS, Strings: []string{""}},
	"tap":    {Type: PHYS, Where: "on the shoulder", Strings: []string{""}},
	"whack":  {Type: PHYS, Where: "on the head", Strings: []string{""}},

	// --- gestures ---
	"applaud": {Type: DEFA, Strings: []string{"", "at"}},
	"bow":     {Type: DEFA, Adverb: "deeply", Strings: []string{"", "to"}},
	"cheer":   {Type: SHRT, Adverb: "enthusiastically", Strings: []string{""}},
	"clap":    {Type: SHRT, Strings: []string{""}},
	"curtsy":  {Type: DEFA, Strings: []string{"", "before"}},
	"flex":    {Type: DEUX, Strings: []string{"flex \nYOUR muscles \nHOW", "flexes \nYOUR muscles \nHOW"}},
	"nod":     {Type: DEFA, Adverb: "solemnly", Strings: []string{"", "at"}},
	"point":   {Type: DEFA, Strings: []string{"", "at"}},
	"shrug":   {Type: DEFA, Strings: []string{"", "at"}},
	"sigh":    {Type: DEFA, Strings: []string{"", "at"}},
	"wave":    {Type: PERS, Adverb: "happily", Strings: []string{"wave$ \nHOW", "wave$ \nHOW at \nWHO"}},

	// --- person-aware ---
	"apologize": {Type: PERS, Strings: []string{"apologize$ \nHOW", "apologize$ to \nWHO \nHOW"}},
	"fear":      {Type: PERS, Strings: []string{"shiver$ with fear", "fear$ \nWHO"}},
	"flirt":     {Type: PERS, Adverb: "shamelessly", Strings: []string{"flirt$ \nHOW", "flirt$ with \nWHO \nHOW"}},
	"grovel":    {Type: PERS, Strings: []string{"grovel$ \nHOW", "grovel$ to \nWHO \nHOW"}},

	// --- messages ---
	"ask":     {Type: SIMP, Message: "'a question", Strings: []string{"ask$ \nWHO: \nWHAT?"}},
	"chant":   {Type: SIMP, Message: "'Hare Krishna Krishna Hare Hare", Strings: []string{" \nHOW chant$: \nWHAT"}},
	"mumble":  {Type: SIMP, Strings: []string{"mumble$ \nMSG \nHOW"}},
	"mutter":  {Type: SIMP, Strings: []string{"mutter$ \nMSG \nHOW"}},
	"pray":    {Type: SIMP, Strings: []string{"pray$ \nMSG \nHOW"}},
	"reply":   {Type: SIMP, Strings: []string{"reply$ \nWHO: \nWHAT?"}},
	"sing":    {Type: SIMP, Adverb: "merrily", Strings: []string{" \nHOW sing$ \nMSG \nAT", "to"}},
	"whisper": {Type: SIMP, Strings: []string{"whisper$ \nMSG \nHOW \nAT", "to"}},
	"yell":    {Type: SIMP, Adverb: "loudly", Strings: []string{"yell$ \nMSG \nHOW \nAT", "at"}},

	// --- misc ---
	"ayt":    {Type: QUAD, Strings: []string{"wave \nYOUR hand", "waves \nYOUR hand", "wave \nYOUR hand in front of \nPOSS face, \nIS \nSUBJ there?", "waves \nYOUR hand in front of \nPOSS face, \nIS \nSUBJ there?"}},
	"ponder": {Type: SHRT, Strings: []string{"about it"}},
	"puzzle": {Type: SIMP, Strings: []string{"look$ puzzled \nAT", "at"}},
	"touch":  {Type: DEUX, Where: "on the arm", Strings: []string{"touch \nWHO \nHOW \nWHERE", "touches \nWHO \nHOW \nWHERE"}},
	"watch":  {Type: QUAD, Adverb: "carefully", Strings: []string{"watch the surroundings \nHOW", "watches the surroundings \nHOW", "watch \nWHO \nHOW", "watches \nWHO \nHOW"}},
}

// BodyParts maps a body-part word to the phrase used for the WHERE
// placeholder.
var BodyParts = map[string]string{
	"ankle":    "in the ankle",
	"arm":      "on the arm",
	"back":     "on the back",
	"behind":   "on the behind",
	"butt":     "on the butt",
	"cheek":    "on the cheek",
	"chest":    "on the chest",
	"ear":      "on the ear",
	"eye":      "in the eye",
	"face":     "in the face",
	"foot":     "on the foot",
	"forehead": "on the forehead",
	"hand":     "on the hand",
	"head":     "on the head",
	"hurts":    "where it hurts",
	"knee":     "on the knee",
	"kneecap":  "on the kneecap",
	"leg":      "on the leg",
	"neck":     "in the neck",
	"nose":     "on the nose",
	"nuts":     "where it hurts",
	"shoulder": "on the shoulder",
	"side":     "in the side",
	"stomach":  "in the stomach",
	"toe":      "on the right toe",
}

// QualifierDef wraps the assembled action texts for a leading qualifier
// ("fail kick"). Action and Room are format strings taking the action text.
// When RoomUsesRoomText is set the room wrapper is applied to the already
// conjugated room text, otherwise to the actor's action text.
type QualifierDef struct {
	Action           string
	Room             string
	RoomUsesRoomText bool
}

// ActionQualifiers are the recognized command-leading qualifiers. "dont" is
// kept as a key so the parser can correct the spelling to "don't".
var ActionQualifiers = map[string]QualifierDef{
	"suddenly": {"suddenly %s", "suddenly %s", true},
	"fail":     {"try to %s, but fail miserably", "tries to %s, but fails miserably", false},
	"again":    {"%s again", "%s again", true},
	"pretend":  {"pretend to %s", "pretends to %s", false},
	"don't":    {"don't %s", "doesn't %s", false},
	"dont":     {"don't %s", "doesn't %s", false},
	"attempt":  {"attempt to %s, without much success", "attempts to %s, without much success", false},
}

// MovementVerbs introduce movement through an exit ("crawl south").
var MovementVerbs = map[string]bool{
	"go":    true,
	"enter": true,
	"climb": true,
	"crawl": true,
}
