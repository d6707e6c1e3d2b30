package server

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crystal-mush/gosoul/pkg/lang"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// World is the loaded room graph plus the starting room for new players.
type World struct {
	Name  string
	Start *world.Location
	Rooms map[string]*world.Location
}

type worldFile struct {
	Name  string     `yaml:"name"`
	Start string     `yaml:"start"`
	Rooms []roomConf `yaml:"rooms"`
}

type roomConf struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Exits       []exitConf `yaml:"exits"`
	Items       []itemConf `yaml:"items"`
	NPCs        []npcConf  `yaml:"npcs"`
}

type exitConf struct {
	Directions []string `yaml:"directions"`
	To         string   `yaml:"to"`
}

type itemConf struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	DefaultVerb string   `yaml:"default_verb"`
}

type npcConf struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Gender string `yaml:"gender"`
}

// LoadWorld reads a YAML world definition and builds the room graph.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read %s: %w", path, err)
	}
	return ParseWorld(data)
}

// ParseWorld builds the room graph from YAML world definition data. Exits are
// resolved in a second pass so rooms can reference each other freely.
func ParseWorld(data []byte) (*World, error) {
	var file worldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("world: parse: %w", err)
	}
	if len(file.Rooms) == 0 {
		return nil, fmt.Errorf("world: no rooms defined")
	}

	w := &World{Name: file.Name, Rooms: make(map[string]*world.Location, len(file.Rooms))}
	for _, rc := range file.Rooms {
		name := strings.ToLower(strings.TrimSpace(rc.Name))
		if name == "" {
			return nil, fmt.Errorf("world: room without a name")
		}
		if _, dup := w.Rooms[name]; dup {
			return nil, fmt.Errorf("world: room %q defined twice", name)
		}
		loc := world.NewLocation(name)
		if rc.Title != "" {
			loc.Title = rc.Title
		}
		w.Rooms[name] = loc
	}

	for _, rc := range file.Rooms {
		loc := w.Rooms[strings.ToLower(strings.TrimSpace(rc.Name))]
		for _, ec := range rc.Exits {
			if len(ec.Directions) == 0 {
				return nil, fmt.Errorf("world: room %q: exit without directions", rc.Name)
			}
			target, ok := w.Rooms[strings.ToLower(ec.To)]
			if !ok {
				return nil, fmt.Errorf("world: room %q: exit %s leads to unknown room %q",
					rc.Name, ec.Directions[0], ec.To)
			}
			world.NewExit(ec.Directions, target).Bind(loc)
		}
		for _, ic := range rc.Items {
			if ic.Name == "" {
				return nil, fmt.Errorf("world: room %q: item without a name", rc.Name)
			}
			item := world.NewItem(ic.Name, ic.Aliases...)
			item.DefaultVerb = ic.DefaultVerb
			loc.Items[item] = true
		}
		for _, nc := range rc.NPCs {
			if nc.Name == "" {
				return nil, fmt.Errorf("world: room %q: npc without a name", rc.Name)
			}
			gender := lang.Neuter
			if nc.Gender != "" {
				g, err := lang.ParseGender(nc.Gender)
				if err != nil {
					return nil, fmt.Errorf("world: npc %q: %w", nc.Name, err)
				}
				gender = g
			}
			npc := world.NewLiving(nc.Name, gender)
			if nc.Title != "" {
				npc.Title = nc.Title
			}
			npc.Move(loc)
		}
	}

	start := strings.ToLower(strings.TrimSpace(file.Start))
	if start == "" {
		return nil, fmt.Errorf("world: no start room set")
	}
	w.Start = w.Rooms[start]
	if w.Start == nil {
		return nil, fmt.Errorf("world: start room %q not defined", file.Start)
	}
	return w, nil
}

// DemoWorld builds the small builtin world used when no world file is
// configured: a tavern with a barkeeper, a newspaper and a town square.
func DemoWorld() *World {
	tavern := world.NewLocation("tavern")
	tavern.Title = "The Drunken Dragon"
	square := world.NewLocation("square")
	square.Title = "Town Square"

	world.NewExit([]string{"north", "door"}, square).Bind(tavern)
	world.NewExit([]string{"south", "tavern"}, tavern).Bind(square)

	paper := world.NewItem("newspaper", "paper")
	paper.DefaultVerb = "read"
	tavern.Items[paper] = true

	barkeep := world.NewLiving("max", lang.Male)
	barkeep.Title = "barkeeper Max"
	barkeep.Move(tavern)
	cat := world.NewLiving("cat", lang.Neuter)
	cat.Title = "scruffy cat"
	cat.Move(square)

	return &World{
		Name:  "demo",
		Start: tavern,
		Rooms: map[string]*world.Location{"tavern": tavern, "square": square},
	}
}
