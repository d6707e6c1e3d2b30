package server

import (
	"strings"
	"testing"
)

const worldYaml = `
name: testlands
start: cave
rooms:
  - name: cave
    title: A Dark Cave
    exits:
      - directions: [north, crevice]
        to: forest
    items:
      - name: Newspaper
        aliases: [paper]
        default_verb: read
    npcs:
      - name: max
        title: barkeeper Max
        gender: m
  - name: forest
    title: The Forest
    exits:
      - directions: [south]
        to: cave
`

func TestParseWorld(t *testing.T) {
	w, err := ParseWorld([]byte(worldYaml))
	if err != nil {
		t.Fatalf("parse world: %v", err)
	}
	if w.Name != "testlands" {
		t.Errorf("name: %q", w.Name)
	}
	cave := w.Rooms["cave"]
	if w.Start != cave {
		t.Fatal("expected start room cave")
	}
	if cave.Title != "A Dark Cave" {
		t.Errorf("cave title: %q", cave.Title)
	}

	exit := cave.Exits["north"]
	if exit == nil {
		t.Fatal("expected north exit")
	}
	if cave.Exits["crevice"] != exit {
		t.Error("expected crevice alias for the same exit")
	}
	if exit.Target != w.Rooms["forest"] {
		t.Error("north should lead to the forest")
	}

	if len(cave.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cave.Items))
	}
	for item := range cave.Items {
		if item.Name != "newspaper" || item.Title != "Newspaper" || item.ActionVerb() != "read" {
			t.Errorf("unexpected item: %+v", item)
		}
	}

	if len(cave.Livings) != 1 {
		t.Fatalf("expected 1 npc, got %d", len(cave.Livings))
	}
	for npc := range cave.Livings {
		if npc.Title != "barkeeper Max" || npc.Subjective() != "he" {
			t.Errorf("unexpected npc: %+v", npc)
		}
	}
}

func TestParseWorldErrors(t *testing.T) {
	cases := map[string]string{
		"no rooms":     "name: x\nstart: a\n",
		"unknown room": "start: a\nrooms:\n  - name: a\n    exits:\n      - directions: [n]\n        to: nowhere\n",
		"no start":     "rooms:\n  - name: a\n",
		"bad start":    "start: b\nrooms:\n  - name: a\n",
		"dup room":     "start: a\nrooms:\n  - name: a\n  - name: a\n",
		"bad gender":   "start: a\nrooms:\n  - name: a\n    npcs:\n      - name: x\n        gender: banana\n",
	}
	for label, data := range cases {
		if _, err := ParseWorld([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", label)
		}
	}
}

func TestDemoWorld(t *testing.T) {
	w := DemoWorld()
	if w.Start == nil || w.Start.Name != "tavern" {
		t.Fatal("demo world should start in the tavern")
	}
	if w.Start.Exits["north"] == nil {
		t.Error("tavern should have a north exit")
	}
	if w.Rooms["square"].Exits["south"].Target != w.Start {
		t.Error("square south should lead back to the tavern")
	}
}

func TestSuggestVerb(t *testing.T) {
	known := []string{"smile", "smirk", "grin", "wave"}
	if got := SuggestVerb("smiel", known); got != "smile" {
		t.Errorf("expected smile, got %q", got)
	}
	if got := SuggestVerb("grin", known); got != "grin" {
		t.Errorf("exact match should win, got %q", got)
	}
	if got := SuggestVerb("xylophone", known); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
	if got := SuggestVerb("", known); got != "" {
		t.Errorf("empty word: got %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 6250 {
		t.Errorf("default port: %d", cfg.Port)
	}
	if cfg.IdleDuration() <= 0 {
		t.Error("expected a default idle timeout")
	}
	cfg.IdleTimeout = 0
	if cfg.IdleDuration() != 0 {
		t.Error("zero idle timeout should disable the deadline")
	}
	if _, err := LoadConfig("does-not-exist.yaml"); err == nil ||
		!strings.Contains(err.Error(), "read") {
		t.Errorf("expected read error, got %v", err)
	}
}
