package headings

import "testing"

func TestSlugCollisions(t *testing.T) {
	c := NewCollector()
	got := []string{c.Slug("foo"), c.Slug("foo"), c.Slug("foo")}
	want := []string{"foo", "foo-1", "foo-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("collision ids mismatch, got %v want %v", got, want)
		}
	}
}

func TestSlugLiteralTextDoesNotPerturbCounter(t *testing.T) {
	c := NewCollector()
	got := []string{c.Slug("foo 1"), c.Slug("foo"), c.Slug("foo")}
	want := []string{"foo-1", "foo", "foo-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids mismatch, got %v want %v", got, want)
		}
	}
}

func TestSlugifyRules(t *testing.T) {
	c := NewCollector()
	cases := map[string]string{
		"Hello World":        "hello-world",
		"What? Really!":      "what-really",
		"Einführung":         "einführung",
		"C'est déjà l'été":   "cest-déjà-lété",
		"snake_case kept":    "snake_case-kept",
		"hyphen-ated":        "hyphen-ated",
		"Numbers 123 stay":   "numbers-123-stay",
		"Trailing dots...":   "trailing-dots",
		"slash/and\\versa":   "slashandversa",
		"ampersand & quotes": "ampersand--quotes",
	}
	for in, want := range cases {
		if got := c.Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	a.Slug("foo")
	a.Slug("foo")

	b := NewCollector()
	if got := b.Slug("foo"); got != "foo" {
		t.Fatalf("fresh collector leaked counters, got %q", got)
	}
}

func TestAddDecodesAndStrips(t *testing.T) {
	c := NewCollector()
	h := c.Add(2, `An <em>inline</em> &amp; heading`)

	if h.Level != 2 {
		t.Fatalf("level mismatch: %d", h.Level)
	}
	if h.Text != `An <em>inline</em> &amp; heading` {
		t.Fatalf("text must keep inline HTML, got %q", h.Text)
	}
	if h.Raw != "An inline & heading" {
		t.Fatalf("raw mismatch, got %q", h.Raw)
	}
	if h.ID != "an-inline--heading" {
		t.Fatalf("id mismatch, got %q", h.ID)
	}

	all := c.Headings()
	if len(all) != 1 || all[0].ID != h.ID {
		t.Fatalf("collector did not record heading: %#v", all)
	}
}
