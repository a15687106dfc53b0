package similarity

import "testing"

func TestDistanceKnownValues(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"ab", "ba", 2},
		{"same", "same", 0},
		{"fazit", "fazti", 2},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Fatalf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"überschrift", "uberschrift"},
		{"", "x"},
		{"einführung", "einfuhrung"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Fatalf("Distance not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	triples := [][3]string{
		{"kitten", "sitting", "mitten"},
		{"fazit", "fazti", "faz"},
		{"", "ab", "abcd"},
		{"überblick", "uberblick", "überblicke"},
	}
	for _, tr := range triples {
		ab := Distance(tr[0], tr[1])
		bc := Distance(tr[1], tr[2])
		ac := Distance(tr[0], tr[2])
		if ac > ab+bc {
			t.Fatalf("triangle inequality violated for %v: %d > %d + %d", tr, ac, ab, bc)
		}
	}
}

func TestDistanceUnicode(t *testing.T) {
	// One substitution over code points, not bytes.
	if got := Distance("fazit", "fazït"); got != 1 {
		t.Fatalf("Distance over diacritics = %d, want 1", got)
	}
}

func TestFindSimilar(t *testing.T) {
	got := FindSimilar("fazti", []string{"fazit"}, 2)
	if len(got) != 1 || got[0] != "fazit" {
		t.Fatalf("expected [fazit], got %v", got)
	}

	if got := FindSimilar("fazti", []string{"fazit"}, 1); len(got) != 0 {
		t.Fatalf("expected no matches with maxDistance=1, got %v", got)
	}
}

func TestFindSimilarExcludesExactAndSorts(t *testing.T) {
	got := FindSimilar("intro", []string{"intro", "intros", "introduction", "outro"}, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	if got[0] != "intros" {
		t.Fatalf("expected closest match first, got %v", got)
	}
	if got[1] != "outro" {
		t.Fatalf("expected outro second, got %v", got)
	}
}

func TestFindSimilarStableTies(t *testing.T) {
	got := FindSimilar("abc", []string{"abd", "abe", "abf"}, 1)
	want := []string{"abd", "abe", "abf"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order not stable, got %v", got)
		}
	}
}
