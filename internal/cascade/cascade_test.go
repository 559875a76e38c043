package cascade

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/leoavce/hrd-dashboard/internal/blob"
	"github.com/leoavce/hrd-dashboard/internal/model"
	"github.com/leoavce/hrd-dashboard/internal/store"
)

func newFixtures(t *testing.T) (*store.Store, *blob.Store) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.New(filepath.Join(dir, "hrdboard.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	bs, err := blob.New(filepath.Join(dir, "files"), "/files")
	if err != nil {
		t.Fatalf("init blob store: %v", err)
	}
	return st, bs
}

func seedProgram(t *testing.T, st *store.Store, id string) {
	t.Helper()
	if err := st.PutProgram(model.Program{ID: id, Title: "테스트", Emoji: "🧪"}); err != nil {
		t.Fatalf("put program: %v", err)
	}
	for _, y := range []string{"2021", "2022", model.SingleYearKey} {
		if err := st.SaveYearBlocks(id, y, map[string]any{
			"content": model.Content{OutlineHTML: "<p>목차</p>"},
		}); err != nil {
			t.Fatalf("save year: %v", err)
		}
	}
	if err := st.SaveSummary(id, "<p>노트</p>"); err != nil {
		t.Fatalf("save summary: %v", err)
	}
	if _, err := st.SaveSchema(id, []string{"widget"}); err != nil {
		t.Fatalf("save schema: %v", err)
	}
	if err := st.SaveOngoing(id, []model.OngoingItem{{ID: "i", Title: "과정"}}); err != nil {
		t.Fatalf("save ongoing: %v", err)
	}
}

func TestDeleteProgram_FullCascade(t *testing.T) {
	st, bs := newFixtures(t)
	seedProgram(t, st, "p")

	if _, err := bs.Save("programs/p/years/2022/design", "a.png", strings.NewReader("a")); err != nil {
		t.Fatalf("save blob: %v", err)
	}

	steps, err := NewDeleter(st, bs).DeleteProgram("p")
	if err != nil {
		t.Fatalf("delete program: %v (steps=%+v)", err, steps)
	}

	wantOrder := []string{"assets", "years", "meta", "program"}
	if len(steps) != len(wantOrder) {
		t.Fatalf("unexpected steps: %+v", steps)
	}
	for i, name := range wantOrder {
		if steps[i].Name != name || !steps[i].OK {
			t.Fatalf("step %d unexpected: %+v", i, steps[i])
		}
	}
	if steps[0].Skipped {
		t.Fatalf("assets step should not be skipped when uploads exist")
	}

	if _, found, err := st.GetProgram("p"); err != nil || found {
		t.Fatalf("program should be gone: found=%v err=%v", found, err)
	}
	docs, err := st.ListYearDocs("p")
	if err != nil || len(docs) != 0 {
		t.Fatalf("year docs should be gone: %v %v", docs, err)
	}
	sum, err := st.GetSummary("p")
	if err != nil || sum.WidgetNoteHTML != "" {
		t.Fatalf("summary should be gone: %+v %v", sum, err)
	}
}

func TestDeleteProgram_NoUploadsSkipsAssets(t *testing.T) {
	st, bs := newFixtures(t)
	seedProgram(t, st, "p")

	steps, err := NewDeleter(st, bs).DeleteProgram("p")
	if err != nil {
		t.Fatalf("delete program: %v", err)
	}
	if steps[0].Name != "assets" || !steps[0].OK || !steps[0].Skipped {
		t.Fatalf("expected skipped assets step, got %+v", steps[0])
	}
	if _, found, _ := st.GetProgram("p"); found {
		t.Fatalf("program should be gone despite missing blob folder")
	}
}
