package soul

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog resolves verb definitions, layering custom socials on top of the
// builtin table. A single Catalog is safely shared by all souls; Load may be
// called again at runtime to swap in a new socials file.
type Catalog struct {
	mu     sync.RWMutex
	custom map[string]VerbDef
}

// NewCatalog creates a catalog holding just the builtin verbs.
func NewCatalog() *Catalog {
	return &Catalog{custom: make(map[string]VerbDef)}
}

// Lookup finds a verb definition, custom socials first.
func (c *Catalog) Lookup(name string) (VerbDef, bool) {
	c.mu.RLock()
	vd, ok := c.custom[name]
	c.mu.RUnlock()
	if ok {
		return vd, true
	}
	vd, ok = Verbs[name]
	return vd, ok
}

// Register adds or replaces a single custom social.
func (c *Catalog) Register(name string, def VerbDef) error {
	if err := validateVerb(name, def); err != nil {
		return err
	}
	c.mu.Lock()
	c.custom[name] = def
	c.mu.Unlock()
	return nil
}

// Clear drops all custom socials, leaving the builtin verbs.
func (c *Catalog) Clear() {
	c.mu.Lock()
	c.custom = make(map[string]VerbDef)
	c.mu.Unlock()
}

// CustomNames returns the names of the loaded custom socials, sorted.
func (c *Catalog) CustomNames() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.custom))
	for name := range c.custom {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Names returns all verb names the catalog resolves, sorted.
func (c *Catalog) Names() []string {
	seen := make(map[string]bool, len(Verbs))
	for name := range Verbs {
		seen[name] = true
	}
	c.mu.RLock()
	for name := range c.custom {
		seen[name] = true
	}
	c.mu.RUnlock()
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a socials YAML file and replaces the custom layer with its
// contents. The builtin verbs are unaffected. On error the catalog keeps its
// previous state.
func (c *Catalog) Load(path string) error {
	defs, err := LoadSocials(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.custom = defs
	c.mu.Unlock()
	return nil
}

type socialsFile struct {
	Socials []socialEntry `yaml:"socials"`
}

type socialEntry struct {
	Verb    string   `yaml:"verb"`
	Type    string   `yaml:"type"`
	Adverb  string   `yaml:"adverb"`
	Message string   `yaml:"message"`
	Where   string   `yaml:"where"`
	Strings []string `yaml:"strings"`
}

var verbTypeNames = map[string]VerbType{
	"DEUX": DEUX,
	"QUAD": QUAD,
	"FULL": FULL,
	"DEFA": DEFA,
	"PREV": PREV,
	"PHYS": PHYS,
	"SHRT": SHRT,
	"PERS": PERS,
	"SIMP": SIMP,
}

// ParseVerbType resolves a verb type by its tag name ("SHRT"), in any case.
func ParseVerbType(name string) (VerbType, bool) {
	t, ok := verbTypeNames[strings.ToUpper(name)]
	return t, ok
}

// LoadSocials parses a socials YAML file into verb definitions. Template
// strings in the file use the same placeholder markers as the builtin table
// (" \nWHO", " \nHOW", ...), written with escaped newlines in the YAML.
func LoadSocials(path string) (map[string]VerbDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read socials: %w", err)
	}
	return ParseSocials(data)
}

// ParseSocials parses socials YAML data into verb definitions.
func ParseSocials(data []byte) (map[string]VerbDef, error) {
	var file socialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse socials: %w", err)
	}
	defs := make(map[string]VerbDef, len(file.Socials))
	for i, entry := range file.Socials {
		name := strings.ToLower(strings.TrimSpace(entry.Verb))
		if name == "" {
			return nil, fmt.Errorf("social #%d: missing verb name", i+1)
		}
		vtype, ok := verbTypeNames[strings.ToUpper(entry.Type)]
		if !ok {
			return nil, fmt.Errorf("social %q: unknown verb type %q", name, entry.Type)
		}
		def := VerbDef{
			Type:    vtype,
			Adverb:  entry.Adverb,
			Message: entry.Message,
			Where:   entry.Where,
			Strings: entry.Strings,
		}
		if err := validateVerb(name, def); err != nil {
			return nil, err
		}
		if _, dup := defs[name]; dup {
			return nil, fmt.Errorf("social %q: defined twice", name)
		}
		defs[name] = def
	}
	return defs, nil
}

func validateVerb(name string, def VerbDef) error {
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("social %q: verb must be a single lowercase word", name)
	}
	if name != strings.ToLower(name) {
		return fmt.Errorf("social %q: verb must be lowercase", name)
	}
	var minStrings int
	switch def.Type {
	case DEUX, PERS:
		minStrings = 2
	case QUAD:
		minStrings = 4
	case SIMP, SHRT, PHYS, PREV:
		minStrings = 1
	case DEFA:
		minStrings = 0
	case FULL:
		return fmt.Errorf("social %q: verb type FULL is not supported", name)
	default:
		return fmt.Errorf("social %q: invalid verb type %d", name, def.Type)
	}
	if len(def.Strings) < minStrings {
		return fmt.Errorf("social %q: verb type %s needs at least %d template strings, got %d",
			name, def.Type, minStrings, len(def.Strings))
	}
	return nil
}
