package validation

import (
	"testing"
)

func TestIsSlug(t *testing.T) {
	valid := []string{
		"football",
		"premier-league",
		"a",
		"2024-cup-final",
		"x9",
	}
	for _, s := range valid {
		if !IsSlug(s) {
			t.Errorf("expected %q to be a valid slug", s)
		}
	}

	invalid := []string{
		"",
		"Bad Slug",
		"UPPER",
		"-leading",
		"trailing-",
		"double--hyphen",
		"under_score",
		"dotted.slug",
		"accented-é",
	}
	for _, s := range invalid {
		if IsSlug(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
