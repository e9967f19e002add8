package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/session"
)

const sparkChars = ".:-=+*#%@"

// CharAggregates groups classifications of the typed prefix by target character.
func CharAggregates(p Progress) []model.CharAggregate {
	index := map[rune]int{}
	var out []model.CharAggregate
	for i := 0; i < p.TypedLength(); i++ {
		r := p.Rune(i)
		pos, ok := index[r]
		if !ok {
			pos = len(out)
			index[r] = pos
			out = append(out, model.CharAggregate{Char: string(r)})
		}
		switch p.State(i) {
		case session.Correct:
			out[pos].Correct++
		case session.Incorrect:
			out[pos].Incorrect++
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// SelectWeakChars returns up to top characters with at least one miss,
// lowest accuracy first.
func SelectWeakChars(aggs []model.CharAggregate, top int) []string {
	candidates := make([]model.CharAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return weaker(candidates[i], candidates[j]) })
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]string, 0, top)
	for i := 0; i < top; i++ {
		out = append(out, candidates[i].Char)
	}
	return out
}

// weaker orders by ascending accuracy, then by character.
func weaker(a, b model.CharAggregate) bool {
	aa, ab := accuracy(a), accuracy(b)
	if aa == ab {
		return a.Char < b.Char
	}
	return aa < ab
}

func accuracy(agg model.CharAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}

// WordAccuracy returns the accuracy percentage of each word touched by the
// typed prefix, in text order. Separators are not counted.
func WordAccuracy(p Progress) []float64 {
	var out []float64
	correct, total := 0, 0
	flush := func() {
		if total > 0 {
			out = append(out, 100*float64(correct)/float64(total))
		}
		correct, total = 0, 0
	}
	for i := 0; i < p.TypedLength(); i++ {
		if p.Rune(i) == ' ' {
			flush()
			continue
		}
		total++
		if p.State(i) == session.Correct {
			correct++
		}
	}
	flush()
	return out
}

// Sparkline renders a single-line ASCII sparkline on a fixed 0-100 scale.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		pos := v / 100
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
