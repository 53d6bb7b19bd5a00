package derive

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
)

// Count is a label with its number of occurrences.
type Count struct {
	Label string
	Count int
}

type MistakeStats struct {
	DeadliestSubject Count
	CommonCause      Count
	Total            int
	Exorcised        int
}

// mostFrequent returns the label with the highest count. Ties go to the label
// seen first; an empty input yields ("None", 0).
func mostFrequent(labels []string) Count {
	counts := make(map[string]int)
	order := []string{}
	for _, l := range labels {
		if _, ok := counts[l]; !ok {
			order = append(order, l)
		}
		counts[l]++
	}
	best := Count{Label: constants.NoneLabel}
	for _, l := range order {
		if counts[l] > best.Count {
			best = Count{Label: l, Count: counts[l]}
		}
	}
	return best
}

func MistakeAnalytics(mistakes []models.MistakeEntry) MistakeStats {
	subjects := make([]string, 0, len(mistakes))
	tags := make([]string, 0, len(mistakes))
	st := MistakeStats{Total: len(mistakes)}
	for _, m := range mistakes {
		subjects = append(subjects, m.Subject)
		tags = append(tags, m.Tag)
		if m.IsExorcised {
			st.Exorcised++
		}
	}
	st.DeadliestSubject = mostFrequent(subjects)
	st.CommonCause = mostFrequent(tags)
	return st
}

// Intn is satisfied by *math/rand.Rand.
type Intn interface {
	Intn(n int) int
}

// Haunt draws one mistake uniformly at random.
func Haunt(mistakes []models.MistakeEntry, rng Intn) (models.MistakeEntry, bool) {
	if len(mistakes) == 0 {
		return models.MistakeEntry{}, false
	}
	return mistakes[rng.Intn(len(mistakes))], true
}

// FilterMistakes keeps entries whose correction, chapter, subject or tag
// contains query (case-insensitive) and whose subject matches. The subject
// "All" or "" matches everything.
func FilterMistakes(mistakes []models.MistakeEntry, query, subject string) []models.MistakeEntry {
	q := strings.ToLower(query)
	out := []models.MistakeEntry{}
	for _, m := range mistakes {
		if subject != "" && subject != constants.AllSubjects && m.Subject != subject {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Correction), q) &&
			!strings.Contains(strings.ToLower(m.Chapter), q) &&
			!strings.Contains(strings.ToLower(m.Subject), q) &&
			!strings.Contains(strings.ToLower(m.Tag), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func uniqueInOrder(seed []string, more []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, s := range append(append([]string{}, seed...), more...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// SubjectOptions lists default subjects followed by any others in use.
func SubjectOptions(mistakes []models.MistakeEntry) []string {
	used := make([]string, 0, len(mistakes))
	for _, m := range mistakes {
		used = append(used, m.Subject)
	}
	return uniqueInOrder(constants.DefaultSubjects, used)
}

// TagOptions lists default causes followed by any others in use.
func TagOptions(mistakes []models.MistakeEntry) []string {
	used := make([]string, 0, len(mistakes))
	for _, m := range mistakes {
		used = append(used, m.Tag)
	}
	return uniqueInOrder(constants.DefaultTags, used)
}

func ChapterOptions(mistakes []models.MistakeEntry) []string {
	used := make([]string, 0, len(mistakes))
	for _, m := range mistakes {
		used = append(used, m.Chapter)
	}
	return uniqueInOrder(nil, used)
}
