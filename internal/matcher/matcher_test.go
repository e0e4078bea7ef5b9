package matcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

func student(id, major string, courses, interests, hobbies, goals []string) *models.Student {
	return &models.Student{
		ID:        id,
		Name:      "Student " + id,
		Major:     major,
		Courses:   courses,
		Interests: interests,
		Hobbies:   hobbies,
		Goals:     goals,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b *models.Student
		want int
	}{
		{
			name: "partial overlap stays below threshold",
			a:    student("a", "CS", []string{"CS301", "MATH210"}, []string{"Technology", "Hiking"}, []string{"Coding"}, []string{"Find study partners"}),
			b:    student("b", "CS", []string{"CS301"}, []string{"Technology"}, nil, []string{"Find study partners"}),
			want: 30, // 10 + 5 + 0 + 5 + 10
		},
		{
			name: "two shared courses and interests same major",
			a:    student("a", "CS", []string{"CS301", "CS302"}, []string{"AI", "Robotics"}, nil, nil),
			b:    student("c", "CS", []string{"CS301", "CS302"}, []string{"AI", "Robotics"}, nil, nil),
			want: 50, // 20 + 10 + 0 + 0 + 10, fixed divisor keeps this at 50
		},
		{
			name: "capped courses and interests same major",
			a:    student("a", "CS", []string{"C1", "C2", "C3", "C4"}, []string{"I1", "I2", "I3", "I4", "I5", "I6"}, nil, nil),
			b:    student("d", "CS", []string{"C1", "C2", "C3", "C4"}, []string{"I1", "I2", "I3", "I4", "I5", "I6"}, nil, nil),
			want: 65, // 30 capped + 25 capped + 10
		},
		{
			name: "identical full profiles score 100",
			a:    student("a", "CS", []string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, []string{"H1", "H2", "H3", "H4"}, []string{"G1", "G2", "G3"}),
			b:    student("e", "CS", []string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, []string{"H1", "H2", "H3", "H4"}, []string{"G1", "G2", "G3"}),
			want: 100,
		},
		{
			name: "nothing in common different major",
			a:    student("a", "CS", []string{"C1"}, []string{"I1"}, []string{"H1"}, []string{"G1"}),
			b:    student("f", "Biology", []string{"C2"}, []string{"I2"}, []string{"H2"}, []string{"G2"}),
			want: 0,
		},
		{
			name: "empty lists contribute zero but majors still count",
			a:    student("a", "CS", nil, nil, nil, nil),
			b:    student("g", "CS", nil, nil, nil, nil),
			want: 10,
		},
		{
			name: "tag comparison is case-sensitive",
			a:    student("a", "CS", []string{"cs301"}, []string{"technology"}, nil, nil),
			b:    student("h", "cs", []string{"CS301"}, []string{"Technology"}, nil, nil),
			want: 0, // stored form is compared verbatim, no normalization
		},
		{
			name: "duplicate tags count once",
			a:    student("a", "CS", []string{"C1", "C1", "C1", "C1"}, nil, nil, nil),
			b:    student("i", "Math", []string{"C1", "C1"}, nil, nil, nil),
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.a, tt.b))
		})
	}
}

func TestScoreBoundsAndSymmetry(t *testing.T) {
	// A spread of profiles with varying overlap; every pair must stay in
	// [0,100] and score symmetrically since intersection and equality are
	// both symmetric.
	profiles := []*models.Student{
		student("s1", "CS", []string{"C1", "C2", "C3", "C4", "C5"}, []string{"I1", "I2"}, []string{"H1"}, []string{"G1"}),
		student("s2", "CS", []string{"C1", "C2"}, []string{"I1", "I2", "I3", "I4", "I5", "I6"}, nil, []string{"G1", "G2"}),
		student("s3", "Math", []string{"C3"}, nil, []string{"H1", "H2", "H3", "H4", "H5"}, nil),
		student("s4", "Biology", nil, nil, nil, nil),
		student("s5", "CS", []string{"C5", "C4", "C3", "C2", "C1"}, []string{"I2", "I1"}, []string{"H1"}, []string{"G1"}),
	}
	for i, a := range profiles {
		for j, b := range profiles {
			got := Score(a, b)
			require.GreaterOrEqual(t, got, 0, "pair %d,%d", i, j)
			require.LessOrEqual(t, got, 100, "pair %d,%d", i, j)
			assert.Equal(t, got, Score(b, a), "score(%s,%s) should be symmetric", a.ID, b.ID)
		}
	}
}

func TestRank(t *testing.T) {
	target := student("me", "CS",
		[]string{"C1", "C2", "C3"},
		[]string{"I1", "I2", "I3", "I4", "I5"},
		[]string{"H1", "H2"},
		[]string{"G1"})

	perfect := student("perfect", "CS",
		[]string{"C1", "C2", "C3"},
		[]string{"I1", "I2", "I3", "I4", "I5"},
		[]string{"H1", "H2"},
		[]string{"G1"})
	good := student("good", "CS",
		[]string{"C1", "C2", "C3"},
		[]string{"I1", "I2", "I3", "I4", "I5"},
		nil, nil)
	weak := student("weak", "CS", []string{"C1"}, []string{"I1"}, nil, []string{"G1"})
	stranger := student("stranger", "Art", nil, nil, nil, nil)

	pool := []*models.Student{weak, target, stranger, good, perfect}
	ranked := Rank(target, pool)

	require.Len(t, ranked, 2)
	assert.Equal(t, "perfect", ranked[0].Student.ID)
	assert.Equal(t, 75, ranked[0].Score) // 30 + 25 + 10 + 5 + 10
	assert.Equal(t, "good", ranked[1].Student.ID)
	assert.Equal(t, 65, ranked[1].Score)

	for _, m := range ranked {
		assert.GreaterOrEqual(t, m.Score, Threshold)
		assert.NotEqual(t, target.ID, m.Student.ID, "target must never match itself")
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankTieBreakByID(t *testing.T) {
	target := student("me", "CS", []string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, nil, nil)

	// Three candidates with identical attribute sets, inserted out of ID
	// order; ties must come back sorted by ID ascending.
	make65 := func(id string) *models.Student {
		return student(id, "CS", []string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, nil, nil)
	}
	pool := []*models.Student{make65("cc"), make65("aa"), make65("bb")}

	ranked := Rank(target, pool)
	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"aa", "bb", "cc"}, []string{
		ranked[0].Student.ID, ranked[1].Student.ID, ranked[2].Student.ID,
	})
}

func TestRankEmptyAndSelfOnlyPools(t *testing.T) {
	target := student("me", "CS", []string{"C1"}, nil, nil, nil)

	assert.Empty(t, Rank(target, nil))
	assert.Empty(t, Rank(target, []*models.Student{target}))
}

func TestRankIsPure(t *testing.T) {
	target := student("me", "CS", []string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, nil, nil)
	pool := make([]*models.Student, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, student(fmt.Sprintf("s%02d", i), "CS",
			[]string{"C1", "C2", "C3"}, []string{"I1", "I2", "I3", "I4", "I5"}, nil, nil))
	}
	first := Rank(target, pool)
	second := Rank(target, pool)
	require.Equal(t, first, second, "ranking a snapshot twice must give identical results")
}
