package model

import "testing"

func TestNormalize_PromotesAssetLinks(t *testing.T) {
	t.Parallel()

	rec := YearRecord{
		Design: Design{AssetLinks: []string{"/files/a.png", "/files/b.png"}},
	}
	rec.Normalize()

	if len(rec.Design.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(rec.Design.Assets))
	}
	if rec.Design.Assets[0].Type != "img" || rec.Design.Assets[0].URL != "/files/a.png" {
		t.Fatalf("unexpected asset: %+v", rec.Design.Assets[0])
	}
}

func TestNormalize_KeepsAssetsOverLegacyLinks(t *testing.T) {
	t.Parallel()

	rec := YearRecord{
		Design: Design{
			Assets:     []DesignAsset{{ID: "x", Type: "img", URL: "/files/new.png"}},
			AssetLinks: []string{"/files/old.png"},
		},
	}
	rec.Normalize()

	if len(rec.Design.Assets) != 1 || rec.Design.Assets[0].URL != "/files/new.png" {
		t.Fatalf("legacy links must not override assets: %+v", rec.Design.Assets)
	}
}

func TestNormalize_PromotesOutline(t *testing.T) {
	t.Parallel()

	rec := YearRecord{Content: Content{Outline: "1차: 오리엔테이션"}}
	rec.Normalize()
	if rec.Content.OutlineHTML != "1차: 오리엔테이션" {
		t.Fatalf("unexpected outlineHtml: %q", rec.Content.OutlineHTML)
	}

	rec = YearRecord{Content: Content{Outline: "구버전", OutlineHTML: "<p>표준</p>"}}
	rec.Normalize()
	if rec.Content.OutlineHTML != "<p>표준</p>" {
		t.Fatalf("legacy outline must not override outlineHtml: %q", rec.Content.OutlineHTML)
	}
}

func TestNormalize_RecomputesSubtotal(t *testing.T) {
	t.Parallel()

	rec := YearRecord{Budget: Budget{Items: []BudgetItem{
		{Name: "대관", UnitCost: 500000, Qty: 2, Subtotal: 1},
		{Name: "강사료", UnitCost: 800000, Qty: 1, Subtotal: 999999},
	}}}
	rec.Normalize()

	if rec.Budget.Items[0].Subtotal != 1000000 {
		t.Fatalf("unexpected subtotal: %v", rec.Budget.Items[0].Subtotal)
	}
	if rec.Budget.Items[1].Subtotal != 800000 {
		t.Fatalf("unexpected subtotal: %v", rec.Budget.Items[1].Subtotal)
	}
	if got := rec.BudgetTotal(); got != 1800000 {
		t.Fatalf("unexpected total: %v", got)
	}
}

func TestImageAssets_FiltersTextAndEmptyURL(t *testing.T) {
	t.Parallel()

	rec := YearRecord{Design: Design{Assets: []DesignAsset{
		{ID: "1", Type: "img", URL: "/files/a.png"},
		{ID: "2", Type: "text", Text: "슬로건"},
		{ID: "3", Type: "img", URL: ""},
	}}}
	imgs := rec.ImageAssets()
	if len(imgs) != 1 || imgs[0].ID != "1" {
		t.Fatalf("unexpected image assets: %+v", imgs)
	}
}
