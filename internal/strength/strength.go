// Package strength scores passwords against a fixed table of heuristic rules.
package strength

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxScore is the highest score the rule table can award.
const MaxScore = 7

// Strength labels, from weakest to strongest.
const (
	VeryWeak   = "Very Weak"
	Weak       = "Weak"
	Fair       = "Fair"
	Good       = "Good"
	VeryStrong = "Very Strong"
)

// SymbolChars lists the characters that count as special characters.
const SymbolChars = "!@#$%^&*()_+-=[]{};:'\",.<>?/\\|`~"

var (
	lowerRe = regexp.MustCompile(`[a-z]`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

var sequences = []string{
	"012", "123", "234", "345", "456", "567", "678", "789", "890",
	"abc", "bcd", "cde", "def",
}

// Result is the outcome of scoring a single password.
type Result struct {
	Score      int      `json:"score"`
	Strength   string   `json:"strength"`
	Color      string   `json:"color"`
	Feedback   []string `json:"feedback"`
	Percentage float64  `json:"percentage"`
}

// award adds a point when test passes and emits hint when it does not.
type award struct {
	test func(pwd string, length int) bool
	hint string
}

// penalty removes a point and emits hint when test passes.
type penalty struct {
	test func(pwd string) bool
	hint string
}

var awards = []award{
	{test: minLength(8), hint: "Password should be at least 8 characters long"},
	{test: minLength(12)},
	{test: minLength(16)},
	{test: matches(lowerRe), hint: "Add lowercase letters"},
	{test: matches(upperRe), hint: "Add uppercase letters"},
	{test: matches(digitRe), hint: "Add numbers"},
	{test: func(pwd string, _ int) bool { return strings.ContainsAny(pwd, SymbolChars) }, hint: "Add special characters (!@#$%^&*)"},
}

var penalties = []penalty{
	{test: hasRepeatedRun, hint: "Avoid repeating characters"},
	{test: hasSequence, hint: "Avoid sequential characters"},
}

type level struct {
	maxScore int
	label    string
	color    string
}

// levels must stay sorted by maxScore.
var levels = []level{
	{maxScore: 2, label: VeryWeak, color: "red"},
	{maxScore: 4, label: Weak, color: "orange"},
	{maxScore: 5, label: Fair, color: "yellow"},
	{maxScore: 6, label: Good, color: "lightgreen"},
	{maxScore: math.MaxInt, label: VeryStrong, color: "green"},
}

// Check scores pwd. It never fails; an empty password simply scores zero.
func Check(pwd string) Result {
	length := utf8.RuneCountInString(pwd)
	score := 0
	feedback := []string{}

	for _, a := range awards {
		if a.test(pwd, length) {
			score++
		} else if a.hint != "" {
			feedback = append(feedback, a.hint)
		}
	}

	for _, p := range penalties {
		if p.test(pwd) {
			score--
			feedback = append(feedback, p.hint)
		}
	}

	score = max(0, score)
	lvl := levelFor(score)

	return Result{
		Score:      score,
		Strength:   lvl.label,
		Color:      lvl.color,
		Feedback:   feedback,
		Percentage: math.Min(100, float64(score)/MaxScore*100),
	}
}

// Labels returns every strength label in ascending order.
func Labels() []string {
	labels := make([]string, len(levels))
	for i, l := range levels {
		labels[i] = l.label
	}
	return labels
}

func levelFor(score int) level {
	for _, l := range levels {
		if score <= l.maxScore {
			return l
		}
	}
	return levels[len(levels)-1]
}

func minLength(n int) func(string, int) bool {
	return func(_ string, length int) bool { return length >= n }
}

func matches(re *regexp.Regexp) func(string, int) bool {
	return func(pwd string, _ int) bool { return re.MatchString(pwd) }
}

// hasRepeatedRun reports whether any character other than a newline appears
// three or more times in a row.
func hasRepeatedRun(pwd string) bool {
	var prev rune
	run := 0
	for _, r := range pwd {
		switch {
		case r == '\n':
			run = 0
			continue
		case run > 0 && r == prev:
			run++
		default:
			prev, run = r, 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

func hasSequence(pwd string) bool {
	lower := strings.ToLower(pwd)
	for _, seq := range sequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}
