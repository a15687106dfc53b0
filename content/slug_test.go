package content

import "testing"

func TestIsValidSlug(t *testing.T) {
	cases := map[string]bool{
		"my-first-post": true,
		"post-2024":     true,
		"My Post":       false,
		"über-post":     false,
	}
	for value, want := range cases {
		if got := IsValidSlug(value); got != want {
			t.Fatalf("IsValidSlug(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestSuggestSlug(t *testing.T) {
	if got := SuggestSlug("My First Post"); got != "my-first-post" {
		t.Fatalf("SuggestSlug = %q", got)
	}
}
