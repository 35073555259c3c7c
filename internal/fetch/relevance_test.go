package fetch

import (
	"reflect"
	"testing"
)

func TestRelevantIsCaseInsensitive(t *testing.T) {
	keywords := []string{"SAF", "CORSIA", "biofuel"}
	cases := []struct {
		text string
		want bool
	}{
		{"New saf blending mandate announced", true},
		{"Corsia criteria updated", true},
		{"BIOFUEL plant opens", true},
		{"Unrelated aviation headline", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Relevant(tc.text, keywords); got != tc.want {
			t.Fatalf("Relevant(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestEmptyKeywordSetFailsClosed(t *testing.T) {
	// A category misconfigured with no keywords must match nothing, not
	// everything.
	if Relevant("SAF CORSIA biofuel everything", nil) {
		t.Fatal("empty keyword set matched")
	}
	if Relevant("SAF CORSIA biofuel everything", []string{}) {
		t.Fatal("empty keyword slice matched")
	}
	if hits := Matched("anything at all", nil); hits != nil {
		t.Fatalf("Matched returned %v for empty keyword set", hits)
	}
}

func TestMatchedReturnsHitList(t *testing.T) {
	got := Matched("SAF registry tracks alternative fuel production", []string{"SAF", "alternative fuel", "CORSIA"})
	want := []string{"SAF", "alternative fuel"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Matched = %v, want %v", got, want)
	}
}
