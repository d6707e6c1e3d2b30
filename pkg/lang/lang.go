// Package lang provides the small English-grammar helpers used by the soul
// parser and message renderer: article selection, list joining with
// count-based grouping, pluralization, possessives, number spelling and a few
// input-validation helpers. All functions are pure.
package lang

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capital uppercases the first rune of s and leaves the rest untouched.
func Capital(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Fullstop makes sure the sentence ends with a period.
func Fullstop(s string) string {
	return FullstopWith(s, ".")
}

// FullstopWith appends punct to s unless s already ends in terminating
// punctuation. Trailing whitespace is removed first.
func FullstopWith(s, punct string) string {
	s = strings.TrimRight(s, " \t")
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ';', ':':
		return s
	}
	return s + punct
}

// PossessiveLetter returns the letters to append to a name to make it
// possessive. Phrases that already are possessive ("your own", "his own")
// get nothing appended.
func PossessiveLetter(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, "own") {
		return ""
	}
	return "'s"
}

// Possessive returns the possessive form of a name: "julie" -> "julie's".
func Possessive(name string) string {
	return name + PossessiveLetter(name)
}

// Join joins words with "and", grouping repeated words with a spelled-out
// count: ["bike", "bike"] -> "two bikes".
func Join(words []string) string {
	return join(words, "and", true)
}

// JoinConj is Join with a custom conjunction ("or").
func JoinConj(words []string, conj string) string {
	return join(words, conj, true)
}

// JoinNoGroup joins without grouping repeated words.
func JoinNoGroup(words []string, conj string) string {
	return join(words, conj, false)
}

func join(words []string, conj string, groupMulti bool) string {
	if len(words) == 0 {
		return ""
	}
	grouped := words
	if groupMulti && len(words) > 1 {
		grouped = groupCounts(words)
	}
	switch len(grouped) {
	case 1:
		return grouped[0]
	case 2:
		return grouped[0] + " " + conj + " " + grouped[1]
	}
	return strings.Join(grouped[:len(grouped)-1], ", ") + ", " + conj + " " + grouped[len(grouped)-1]
}

// groupCounts collapses repeated words (ignoring leading articles) into
// "two bikes" style phrases, preserving first-occurrence order.
func groupCounts(words []string) []string {
	var order []string
	counts := make(map[string]int)
	originals := make(map[string]string)
	for _, w := range words {
		base := stripArticle(w)
		if _, seen := counts[base]; !seen {
			order = append(order, base)
			originals[base] = w
		}
		counts[base]++
	}
	out := make([]string, 0, len(order))
	for _, base := range order {
		if n := counts[base]; n > 1 {
			out = append(out, SpellNumber(float64(n))+" "+Pluralize(base, n))
		} else {
			out = append(out, originals[base])
		}
	}
	return out
}

func stripArticle(word string) string {
	for _, art := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(word, art) {
			return word[len(art):]
		}
	}
	return word
}

var irregularPlurals = map[string]string{
	"child":  "children",
	"foot":   "feet",
	"goose":  "geese",
	"man":    "men",
	"mouse":  "mice",
	"person": "people",
	"tooth":  "teeth",
	"woman":  "women",
}

// o-final words that take -es rather than -s.
var oesPlurals = map[string]bool{
	"echo":    true,
	"hero":    true,
	"potato":  true,
	"tomato":  true,
	"torpedo": true,
	"veto":    true,
	"volcano": true,
}

// Pluralize returns the plural form of word when amount is not 1.
func Pluralize(word string, amount int) string {
	if amount == 1 || word == "" {
		return word
	}
	if p, ok := irregularPlurals[word]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(word, "is"):
		return word[:len(word)-2] + "es" // crisis -> crises
	case strings.HasSuffix(word, "zz"):
		return word + "es"
	case strings.HasSuffix(word, "z"):
		return word + "zes" // quiz -> quizzes
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "sh"),
		strings.HasSuffix(word, "ch"), strings.HasSuffix(word, "x"):
		return word + "es"
	case strings.HasSuffix(word, "y"):
		if len(word) > 1 && strings.ContainsRune("aeiou", rune(word[len(word)-2])) {
			return word + "s" // key -> keys
		}
		return word[:len(word)-1] + "ies" // lady -> ladies
	case strings.HasSuffix(word, "fe"):
		return word[:len(word)-2] + "ves" // knife -> knives
	case strings.HasSuffix(word, "f"):
		return word[:len(word)-1] + "ves" // wolf -> wolves
	case strings.HasSuffix(word, "o"):
		if oesPlurals[word] {
			return word + "es"
		}
		return word + "s" // photo -> photos
	}
	return word + "s"
}

// Fullverb returns the present participle of a verb: "poke" -> "poking".
func Fullverb(verb string) string {
	if strings.HasSuffix(verb, "e") && !strings.HasSuffix(verb, "ee") {
		return verb[:len(verb)-1] + "ing"
	}
	return verb + "ing"
}

var articleWords = map[string]bool{"a": true, "an": true, "the": true, "some": true}

// Words that already begin with a "you" sound, so they take "a".
var soundsLikeYou = regexp.MustCompile(`^(e[uw]|onc?e\b|uni([^nmd]|mo)|ut[th]|u[bcfhjkqrst][aeiou])`)

// Lowercase y followed by a consonant cluster sounds like a vowel ("ycleped").
var vowelY = regexp.MustCompile(`^y(b[lor]|cl[ea]|fere|gg|p[ios]|rou|tt)`)

// A prefixes the word with "a" or "an", unless it already carries an article,
// a spelled-out number ("five eggs") or a possessive. Spelled ordinals get
// "the" instead ("the fifth egg").
func A(word string) string {
	if word == "" {
		return ""
	}
	first := word
	if i := strings.IndexAny(word, " \t"); i >= 0 {
		first = word[:i]
	}
	lower := strings.ToLower(first)
	if articleWords[lower] || strings.HasSuffix(lower, "'s") {
		return word
	}
	if spelledNumberWords[lower] {
		return word
	}
	if spelledOrdinalWords[lower] {
		return "the " + word
	}
	return indefiniteArticle(first) + " " + word
}

// ACapital is A with the result capitalized.
func ACapital(word string) string {
	return Capital(A(word))
}

// indefiniteArticle picks "a" or "an" using sound-based heuristics
// (after Conway's Lingua::EN::Inflect rules).
func indefiniteArticle(word string) string {
	if len(word) == 1 {
		if strings.ContainsAny(word, "aefhilmnorsxAEFHILMNORSX") {
			return "an"
		}
		return "a"
	}
	lower := strings.ToLower(word)
	for _, p := range []string{"euler", "heir", "honest", "hono"} {
		if strings.HasPrefix(lower, p) {
			return "an"
		}
	}
	if strings.HasPrefix(lower, "hour") && !strings.HasPrefix(lower, "houri") {
		return "an"
	}
	if soundsLikeYou.MatchString(lower) {
		return "a"
	}
	if strings.ContainsRune("aeiou", rune(lower[0])) {
		return "an"
	}
	// the y-sound rule is for lowercase words only: "an yttric", "a YCLEPED"
	if vowelY.MatchString(word) {
		return "an"
	}
	return "a"
}

// Split splits a string on whitespace, but keeps single- or double-quoted
// substrings together (the quotes are removed and the contents trimmed).
// An unterminated quote is kept literally.
func Split(s string) []string {
	var out []string
	i, n := 0, len(s)
	for i < n {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if c := s[i]; c == '\'' || c == '"' {
			if j := strings.IndexByte(s[i+1:], c); j >= 0 {
				out = append(out, strings.TrimSpace(s[i+1:i+1+j]))
				i += j + 2
				continue
			}
		}
		j := i
		for j < n && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		out = append(out, s[i:j])
		i = j
	}
	return out
}

var yesWords = map[string]bool{
	"y": true, "yes": true, "yep": true, "yeah": true, "aye": true,
	"sure": true, "sure thing": true, "ok": true, "okay": true, "yessir": true,
}

var noWords = map[string]bool{
	"n": true, "no": true, "nope": true, "nay": true, "never": true,
	"negative": true, "no way": true, "hell no": true,
}

// YesNo interprets a yes/no style answer.
func YesNo(answer string) (bool, error) {
	w := strings.ToLower(strings.TrimSpace(answer))
	if yesWords[w] {
		return true, nil
	}
	if noWords[w] {
		return false, nil
	}
	return false, fmt.Errorf("lang: cannot determine yes or no from %q", answer)
}
