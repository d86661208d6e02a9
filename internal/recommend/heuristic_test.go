package recommend

import (
	"reflect"
	"testing"
)

func TestHeuristicTitlesDeterministic(t *testing.T) {
	text := "Senior engineer: Python, react, AWS, kubernetes and SQL."
	first, _ := heuristicTitles(text)
	second, _ := heuristicTitles(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("expected matches for known keywords")
	}
}

func TestHeuristicTitlesPythonReact(t *testing.T) {
	titles, matched := heuristicTitles("python developer with react experience")

	want := map[string]bool{"Python Developer": false, "React Developer": false}
	seen := make(map[string]int)
	for _, title := range titles {
		seen[title]++
		if _, ok := want[title]; ok {
			want[title] = true
		}
	}
	for title, found := range want {
		if !found {
			t.Fatalf("expected %q in %v", title, titles)
		}
	}
	for title, count := range seen {
		if count > 1 {
			t.Fatalf("duplicate title %q in %v", title, titles)
		}
	}
	if !reflect.DeepEqual(matched, []string{"python", "react"}) {
		t.Fatalf("unexpected matched keywords: %v", matched)
	}
}

func TestHeuristicTitlesCaseInsensitive(t *testing.T) {
	titles, _ := heuristicTitles("EXPERT IN PYTHON AND DJANGO")
	if len(titles) == 0 || titles[0] != "Python Developer" {
		t.Fatalf("expected Python Developer first, got %v", titles)
	}
}

func TestHeuristicTitlesNoMatches(t *testing.T) {
	titles, matched := heuristicTitles("florist with a passion for gardening")
	if len(titles) != 0 {
		t.Fatalf("expected empty list, got %v", titles)
	}
	if len(matched) != 0 {
		t.Fatalf("expected no matched keywords, got %v", matched)
	}
}

func TestHeuristicTitlesFirstSeenOrder(t *testing.T) {
	// Table order defines the scan: sql precedes aws regardless of text order.
	titles, _ := heuristicTitles("aws first, sql second")
	want := []string{"Database Administrator", "Data Analyst", "Cloud Engineer", "DevOps Engineer"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("got %v, want %v", titles, want)
	}
}
