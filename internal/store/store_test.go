package store

import (
	"path/filepath"
	"testing"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(filepath.Join(t.TempDir(), "hrdboard.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestGetDoc_MissingIsNotError(t *testing.T) {
	st := newTestStore(t)

	var out map[string]any
	found, err := st.GetDoc("programs/nope", &out)
	if err != nil {
		t.Fatalf("get missing doc: %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
}

func TestMergeDoc_NestedMergeArrayReplace(t *testing.T) {
	st := newTestStore(t)

	if err := st.SetDoc("programs/p/years/2022", map[string]any{
		"budget": map[string]any{"items": []any{map[string]any{"name": "대관"}}},
		"design": map[string]any{"note": "기존 노트", "assets": []any{}},
	}); err != nil {
		t.Fatalf("set doc: %v", err)
	}

	// design.note 만 덮어쓰면 budget 과 design.assets 는 살아남는다
	if err := st.MergeDoc("programs/p/years/2022", map[string]any{
		"design": map[string]any{"note": "새 노트"},
	}); err != nil {
		t.Fatalf("merge doc: %v", err)
	}

	var out map[string]any
	if _, err := st.GetDoc("programs/p/years/2022", &out); err != nil {
		t.Fatalf("get doc: %v", err)
	}
	design := out["design"].(map[string]any)
	if design["note"] != "새 노트" {
		t.Fatalf("unexpected note: %v", design["note"])
	}
	if _, ok := design["assets"]; !ok {
		t.Fatalf("sibling field lost in merge: %v", design)
	}
	if _, ok := out["budget"]; !ok {
		t.Fatalf("unrelated block lost in merge: %v", out)
	}

	// 배열은 병합이 아니라 통째 교체
	if err := st.MergeDoc("programs/p/years/2022", map[string]any{
		"budget": map[string]any{"items": []any{}},
	}); err != nil {
		t.Fatalf("merge doc: %v", err)
	}
	if _, err := st.GetDoc("programs/p/years/2022", &out); err != nil {
		t.Fatalf("get doc: %v", err)
	}
	items := out["budget"].(map[string]any)["items"].([]any)
	if len(items) != 0 {
		t.Fatalf("array should be replaced wholesale: %v", items)
	}
}

func TestUpdateFields_DottedPath(t *testing.T) {
	st := newTestStore(t)

	if err := st.UpdateFields("programs/p/years/single", map[string]any{
		"design.note": "점 표기로 쓴 노트",
		"updatedAt":   int64(42),
	}); err != nil {
		t.Fatalf("update fields: %v", err)
	}

	var out map[string]any
	found, err := st.GetDoc("programs/p/years/single", &out)
	if err != nil || !found {
		t.Fatalf("get doc: found=%v err=%v", found, err)
	}
	design := out["design"].(map[string]any)
	if design["note"] != "점 표기로 쓴 노트" {
		t.Fatalf("unexpected note: %v", design["note"])
	}
}

func TestProgramCRUD(t *testing.T) {
	st := newTestStore(t)

	if err := st.PutProgram(model.Program{ID: "b-prog", Title: "나중", Emoji: "🏷️", CreatedAt: 200}); err != nil {
		t.Fatalf("put program: %v", err)
	}
	if err := st.PutProgram(model.Program{ID: "a-prog", Title: "먼저", Emoji: "🚀", CreatedAt: 100}); err != nil {
		t.Fatalf("put program: %v", err)
	}

	programs, err := st.ListPrograms()
	if err != nil {
		t.Fatalf("list programs: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(programs))
	}
	if programs[0].ID != "a-prog" || programs[1].ID != "b-prog" {
		t.Fatalf("programs out of created order: %+v", programs)
	}

	if err := st.PatchProgram("a-prog", map[string]any{"title": "수정됨"}); err != nil {
		t.Fatalf("patch program: %v", err)
	}
	p, found, err := st.GetProgram("a-prog")
	if err != nil || !found {
		t.Fatalf("get program: found=%v err=%v", found, err)
	}
	if p.Title != "수정됨" || p.Emoji != "🚀" {
		t.Fatalf("patch touched unrelated fields: %+v", p)
	}

	count, err := st.CountPrograms()
	if err != nil || count != 2 {
		t.Fatalf("count programs: %d %v", count, err)
	}
}

func TestGetYear_MissingReturnsEmptyNormalized(t *testing.T) {
	st := newTestStore(t)

	rec, err := st.GetYear("ghost", "2022")
	if err != nil {
		t.Fatalf("get year: %v", err)
	}
	if len(rec.Budget.Items) != 0 || rec.UpdatedAt != 0 {
		t.Fatalf("expected empty record, got %+v", rec)
	}
}

func TestGetYear_NormalizesLegacyFields(t *testing.T) {
	st := newTestStore(t)

	if err := st.SetDoc(YearPath("p", "2021"), map[string]any{
		"design":  map[string]any{"assetLinks": []any{"/files/a.png"}},
		"content": map[string]any{"outline": "평문 목차"},
		"budget": map[string]any{"items": []any{
			map[string]any{"name": "대관", "unitCost": 1000, "qty": 3, "subtotal": 1},
		}},
	}); err != nil {
		t.Fatalf("set doc: %v", err)
	}

	rec, err := st.GetYear("p", "2021")
	if err != nil {
		t.Fatalf("get year: %v", err)
	}
	if len(rec.Design.Assets) != 1 || rec.Design.Assets[0].URL != "/files/a.png" {
		t.Fatalf("assetLinks not promoted: %+v", rec.Design)
	}
	if rec.Content.OutlineHTML != "평문 목차" {
		t.Fatalf("outline not promoted: %+v", rec.Content)
	}
	if rec.Budget.Items[0].Subtotal != 3000 {
		t.Fatalf("subtotal not recomputed: %+v", rec.Budget.Items[0])
	}
}

func TestSaveYearBlocks_ReplacesBlockWholesale(t *testing.T) {
	st := newTestStore(t)

	if err := st.SaveYearBlocks("p", "2022", map[string]any{
		"design": model.Design{Note: "처음 노트", Assets: []model.DesignAsset{{ID: "a", Type: "img", URL: "/files/a.png"}}},
	}); err != nil {
		t.Fatalf("save blocks: %v", err)
	}
	// 노트 없는 블록으로 다시 저장하면 노트도 사라져야 한다
	if err := st.SaveYearBlocks("p", "2022", map[string]any{
		"design": model.Design{Assets: []model.DesignAsset{}},
	}); err != nil {
		t.Fatalf("save blocks: %v", err)
	}

	rec, err := st.GetYear("p", "2022")
	if err != nil {
		t.Fatalf("get year: %v", err)
	}
	if rec.Design.Note != "" || len(rec.Design.Assets) != 0 {
		t.Fatalf("block not replaced wholesale: %+v", rec.Design)
	}
	if rec.UpdatedAt == 0 {
		t.Fatalf("updatedAt not set")
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	st := newTestStore(t)

	// 저장 전에는 기본 구성
	sc, err := st.GetSchema("p")
	if err != nil {
		t.Fatalf("get schema: %v", err)
	}
	if len(sc.Sections) != len(model.SectionDefs) {
		t.Fatalf("expected default schema, got %v", sc.Sections)
	}

	saved, err := st.SaveSchema("p", []string{"widget", "bogus", "yearly"})
	if err != nil {
		t.Fatalf("save schema: %v", err)
	}
	if len(saved.Sections) != 2 {
		t.Fatalf("unknown section not dropped: %v", saved.Sections)
	}

	sc, err = st.GetSchema("p")
	if err != nil {
		t.Fatalf("get schema: %v", err)
	}
	if len(sc.Sections) != 2 || sc.Sections[0] != "widget" || sc.Sections[1] != "yearly" {
		t.Fatalf("unexpected schema: %v", sc.Sections)
	}
}

func TestOngoingRoundTrip(t *testing.T) {
	st := newTestStore(t)

	doc, err := st.GetOngoing("p")
	if err != nil {
		t.Fatalf("get ongoing: %v", err)
	}
	if doc.Items == nil || len(doc.Items) != 0 {
		t.Fatalf("expected empty items, got %+v", doc)
	}

	items := []model.OngoingItem{{
		ID: "i1", Title: "3월 리더십 과정", From: "2026-03-02", To: "2026-03-27",
		Checklist: []model.ChecklistItem{{ID: "c1", Text: "장소 예약", Done: true}},
	}}
	if err := st.SaveOngoing("p", items); err != nil {
		t.Fatalf("save ongoing: %v", err)
	}

	doc, err = st.GetOngoing("p")
	if err != nil {
		t.Fatalf("get ongoing: %v", err)
	}
	if len(doc.Items) != 1 || doc.Items[0].DoneCount() != 1 {
		t.Fatalf("unexpected doc: %+v", doc)
	}
}

func TestSeedDefaultPrograms_OnlyWhenEmpty(t *testing.T) {
	st := newTestStore(t)

	if err := st.SeedDefaultPrograms(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	count, err := st.CountPrograms()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected seeded programs")
	}

	// 두 번째 호출은 아무것도 만들지 않는다
	if err := st.SeedDefaultPrograms(); err != nil {
		t.Fatalf("seed again: %v", err)
	}
	again, err := st.CountPrograms()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if again != count {
		t.Fatalf("seed must be idempotent: %d -> %d", count, again)
	}

	// 시드된 프로그램은 연도 컨테이너까지 갖고 있다
	docs, err := st.ListYearDocs("devconf")
	if err != nil {
		t.Fatalf("list year docs: %v", err)
	}
	if len(docs) != len(model.DefaultYears) {
		t.Fatalf("expected %d year docs, got %d", len(model.DefaultYears), len(docs))
	}
}

func TestUserRoundTrip(t *testing.T) {
	st := newTestStore(t)

	if _, found, err := st.GetUser("none@local"); err != nil || found {
		t.Fatalf("expected missing user: found=%v err=%v", found, err)
	}

	u := User{Email: "admin@local", Role: "admin", Salt: "s", PassHash: "h"}
	if err := st.PutUser(u); err != nil {
		t.Fatalf("put user: %v", err)
	}
	got, found, err := st.GetUser("admin@local")
	if err != nil || !found {
		t.Fatalf("get user: found=%v err=%v", found, err)
	}
	if got.Role != "admin" || got.Salt != "s" {
		t.Fatalf("unexpected user: %+v", got)
	}

	count, err := st.CountUsers()
	if err != nil || count != 1 {
		t.Fatalf("count users: %d %v", count, err)
	}
}
