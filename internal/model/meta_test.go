package model

import "testing"

func TestNormalizeSchema_DropsUnknownSections(t *testing.T) {
	t.Parallel()

	s := NormalizeSchema(Schema{Sections: []string{"widget", "bogus", "yearly"}})
	if len(s.Sections) != 2 || s.Sections[0] != "widget" || s.Sections[1] != "yearly" {
		t.Fatalf("unexpected sections: %v", s.Sections)
	}
}

func TestNormalizeSchema_EmptyFallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := NormalizeSchema(Schema{Sections: []string{"nope"}})
	if len(s.Sections) != len(SectionDefs) {
		t.Fatalf("expected default sections, got %v", s.Sections)
	}

	s = NormalizeSchema(Schema{})
	if len(s.Sections) != len(SectionDefs) {
		t.Fatalf("expected default sections, got %v", s.Sections)
	}
}

func TestSchemaEnabled(t *testing.T) {
	t.Parallel()

	s := Schema{Sections: []string{"widget", "single:budget"}}
	if !s.Enabled("widget") {
		t.Fatalf("widget should be enabled")
	}
	if s.Enabled("yearly") {
		t.Fatalf("yearly should be disabled")
	}
}

func TestSummaryNormalize_LegacyNote(t *testing.T) {
	t.Parallel()

	sum := Summary{WidgetNote: "평문 노트"}
	sum.Normalize()
	if sum.WidgetNoteHTML != "평문 노트" {
		t.Fatalf("unexpected note: %q", sum.WidgetNoteHTML)
	}

	sum = Summary{WidgetNote: "구버전", WidgetNoteHTML: "<p>표준</p>"}
	sum.Normalize()
	if sum.WidgetNoteHTML != "<p>표준</p>" {
		t.Fatalf("legacy note must not override: %q", sum.WidgetNoteHTML)
	}
}
