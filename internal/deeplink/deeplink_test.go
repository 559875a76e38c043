package deeplink

import "testing"

func TestParse_EmptyAndHome(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"", "#", "#/", "#/home", "/home", "home"} {
		r := Parse(hash)
		if r.Page != PageHome {
			t.Fatalf("%q: expected home, got %+v", hash, r)
		}
	}
}

func TestParse_Program(t *testing.T) {
	t.Parallel()

	r := Parse("#/program/devconf")
	if r.Page != PageProgram || r.ProgramID != "devconf" {
		t.Fatalf("unexpected route: %+v", r)
	}
	if r.Focus != "" || r.Year != "" {
		t.Fatalf("expected empty query fields: %+v", r)
	}
}

func TestParse_ProgramWithQuery(t *testing.T) {
	t.Parallel()

	r := Parse("#/program/devconf?focus=items:budget&year=2022")
	if r.Page != PageProgram || r.ProgramID != "devconf" {
		t.Fatalf("unexpected route: %+v", r)
	}
	if r.Focus != "items:budget" || r.Year != "2022" {
		t.Fatalf("unexpected query fields: %+v", r)
	}
}

func TestParse_EscapedProgramID(t *testing.T) {
	t.Parallel()

	r := Parse("#/program/ai%2Ftraining")
	if r.ProgramID != "ai/training" {
		t.Fatalf("unexpected id: %q", r.ProgramID)
	}
}

func TestParse_UnknownFallsBackToHome(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"#/unknown", "#/program", "#/program/", "#/program/%zz"} {
		r := Parse(hash)
		if r.Page != PageHome {
			t.Fatalf("%q: expected home fallback, got %+v", hash, r)
		}
	}
}

func TestBuildProgram_RoundTrip(t *testing.T) {
	t.Parallel()

	hash := BuildProgram("ai/training", "items:budget", "2023")
	r := Parse(hash)
	if r.ProgramID != "ai/training" || r.Focus != "items:budget" || r.Year != "2023" {
		t.Fatalf("round trip failed: %q -> %+v", hash, r)
	}

	if got := BuildProgram("devconf", "", ""); got != "#/program/devconf" {
		t.Fatalf("unexpected hash: %q", got)
	}
}
