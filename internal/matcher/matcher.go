// Package matcher computes compatibility scores between student profiles
// and ranks candidate pools for the discover screen.
package matcher

import (
	"math"
	"sort"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

// Scoring rubric. Each category contributes a capped number of points and
// the caps sum to exactly maxRawScore, so the normalization divisor is
// fixed rather than per-pair.
const (
	coursePoints = 10
	courseCap    = 30

	interestPoints = 5
	interestCap    = 25

	hobbyPoints = 5
	hobbyCap    = 20

	goalPoints = 5
	goalCap    = 15

	majorPoints = 10

	maxRawScore = courseCap + interestCap + hobbyCap + goalCap + majorPoints

	// Threshold below which a pair is not considered a meaningful match.
	Threshold = 60
)

// Match pairs a candidate with their compatibility score against the target.
type Match struct {
	Student *models.Student `json:"student"`
	Score   int             `json:"score"`
}

// Score returns the weighted attribute overlap between two students as an
// integer in [0,100]. Tag comparison is exact and case-sensitive; data
// entered inconsistently will under-count, which matches the stored form.
func Score(a, b *models.Student) int {
	raw := 0
	raw += capped(overlap(a.Courses, b.Courses)*coursePoints, courseCap)
	raw += capped(overlap(a.Interests, b.Interests)*interestPoints, interestCap)
	raw += capped(overlap(a.Hobbies, b.Hobbies)*hobbyPoints, hobbyCap)
	raw += capped(overlap(a.Goals, b.Goals)*goalPoints, goalCap)
	if a.Major == b.Major {
		raw += majorPoints
	}
	return int(math.Round(float64(raw) / maxRawScore * 100))
}

// Rank scores every candidate in pool against target, drops the target
// itself and anything under Threshold, and returns the rest sorted by score
// descending. Equal scores are ordered by candidate ID ascending so results
// are reproducible regardless of pool iteration order.
func Rank(target *models.Student, pool []*models.Student) []Match {
	matches := make([]Match, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == target.ID {
			continue
		}
		score := Score(target, candidate)
		if score < Threshold {
			continue
		}
		matches = append(matches, Match{Student: candidate, Score: score})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Student.ID < matches[j].Student.ID
	})
	return matches
}

// overlap counts distinct tags present in both lists.
func overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, tag := range a {
		set[tag] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, tag := range b {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if _, ok := set[tag]; ok {
			n++
		}
	}
	return n
}

func capped(points, cap int) int {
	if points > cap {
		return cap
	}
	return points
}
