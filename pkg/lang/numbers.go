package lang

import (
	"math"
	"strconv"
)

var smallNumbers = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var tensNumbers = map[int]string{
	2: "twenty", 3: "thirty", 4: "forty", 5: "fifty",
	6: "sixty", 7: "seventy", 8: "eighty", 9: "ninety",
}

var ordinalSmall = [...]string{
	"zeroth", "first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
	"thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth",
	"eighteenth", "nineteenth", "twentieth",
}

var ordinalTens = map[int]string{
	2: "twentieth", 3: "thirtieth", 4: "fortieth", 5: "fiftieth",
	6: "sixtieth", 7: "seventieth", 8: "eightieth", 9: "ninetieth",
}

// word sets used by A() to recognize already-quantified phrases
var (
	spelledNumberWords  = make(map[string]bool)
	spelledOrdinalWords = make(map[string]bool)
)

func init() {
	for i := 0; i < 100; i++ {
		spelledNumberWords[spellInt(i)] = true
		spelledOrdinalWords[SpellOrdinal(i)] = true
	}
	spelledNumberWords["hundred"] = true
	spelledNumberWords["thousand"] = true
	spelledNumberWords["million"] = true
}

// spellInt spells non-negative numbers below 100, everything else stays decimal.
func spellInt(n int) string {
	if n >= 0 && n <= 20 {
		return smallNumbers[n]
	}
	if n > 20 && n < 100 {
		t := tensNumbers[n/10]
		if n%10 == 0 {
			return t
		}
		return t + "-" + smallNumbers[n%10]
	}
	return strconv.Itoa(n)
}

// SpellNumber returns a spelled-out form of the number where sensible:
// integers below hundred are spelled, halves and quarters get "and a half"
// style suffixes, numbers very close to an integer become "about ...", and
// anything else is returned as decimal digits.
func SpellNumber(number float64) string {
	sign := ""
	v := number
	if v < 0 {
		sign = "minus "
		v = -v
	}
	whole := math.Floor(v)
	frac := v - whole
	w := int(whole)
	switch {
	case frac == 0:
		return sign + spellInt(w)
	case frac == 0.5:
		return sign + spellInt(w) + " and a half"
	case frac == 0.25:
		return sign + spellInt(w) + " and a quarter"
	case frac == 0.75:
		return sign + spellInt(w) + " and three quarters"
	case frac < 0.005:
		return "about " + sign + spellInt(w)
	case frac > 0.995:
		return "about " + sign + spellInt(w+1)
	}
	return strconv.FormatFloat(number, 'g', -1, 64)
}

// Ordinal returns "1st", "2nd", "13th" etc.
func Ordinal(n int) string {
	s := strconv.Itoa(n)
	a := n
	if a < 0 {
		a = -a
	}
	if rem := a % 100; rem >= 11 && rem <= 13 {
		return s + "th"
	}
	switch a % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}

// SpellOrdinal spells ordinals below 100 ("seventy-sixth"); larger values
// fall back to Ordinal.
func SpellOrdinal(n int) string {
	sign := ""
	if n < 0 {
		sign = "minus "
		n = -n
	}
	if n <= 20 {
		return sign + ordinalSmall[n]
	}
	if n < 100 {
		if n%10 == 0 {
			return sign + ordinalTens[n/10]
		}
		return sign + tensNumbers[n/10] + "-" + ordinalSmall[n%10]
	}
	return sign + Ordinal(n)
}
