package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devmart/internal/block"
	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type rendererFixture struct {
	gdb      *gorm.DB
	pages    *service.PageService
	sections *service.SectionService
	renderer *Renderer
}

func setupRenderer(t *testing.T) *rendererFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:renderer-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Page{}, &db.PageSection{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	dir := t.TempDir()
	templates := map[string]string{
		"hero.html":    `<h1 class="hero">{{.title}}</h1>`,
		"cta.html":     `<p class="cta">{{.text}}</p>`,
		"marquee.html": `<div class="marquee">{{.text}}</div>`,
	}
	for name, content := range templates {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write template %s: %v", name, err)
		}
	}
	registry := block.NewRegistryWithDefinitions(dir, []block.Definition{
		{Type: "Hero1_CreativeAgency", TemplateFile: "hero.html", Wrapping: block.WrapDefault},
		{Type: "CTA2_Centered", TemplateFile: "cta.html", Wrapping: block.WrapDefault},
		{Type: "Marquee1_Scrolling", TemplateFile: "marquee.html", Wrapping: block.WrapFullBleed},
	})

	pages := service.NewPageService(gdb)
	sections := service.NewSectionService(gdb, registry)
	return &rendererFixture{
		gdb:      gdb,
		pages:    pages,
		sections: sections,
		renderer: New(pages, sections, registry, "https://devmart.example.com", 2*time.Second),
	}
}

func (f *rendererFixture) createPage(t *testing.T, slug string, status db.PageStatus) *db.Page {
	t.Helper()
	page := db.Page{
		Slug:            slug,
		Title:           "Title of " + slug,
		MetaDescription: "desc",
		MetaKeywords:    "kw",
		Layout:          db.DefaultLayout,
		Status:          status,
	}
	if err := f.gdb.Create(&page).Error; err != nil {
		t.Fatalf("create page: %v", err)
	}
	return &page
}

func (f *rendererFixture) addSection(t *testing.T, pageID uint, blockType string, orderIndex int, props db.PropsMap, mutate ...func(*db.PageSection)) *db.PageSection {
	t.Helper()
	section := db.PageSection{
		PageID:       pageID,
		BlockType:    blockType,
		BlockProps:   props,
		OrderIndex:   orderIndex,
		IsActive:     true,
		HasContainer: true,
	}
	for _, fn := range mutate {
		fn(&section)
	}
	if err := f.gdb.Create(&section).Error; err != nil {
		t.Fatalf("create section: %v", err)
	}
	return &section
}

var adminViewer = service.Viewer{Authenticated: true, Role: db.RoleAdmin}

func TestRenderer_PublishedPage(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Welcome"})
	f.addSection(t, page.ID, "CTA2_Centered", 1, db.PropsMap{"text": "Call us"})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	if result.State != StateReady {
		t.Fatalf("state = %q, want ready", result.State)
	}
	if result.DraftPreview {
		t.Fatal("published page must not carry the draft indicator")
	}
	if result.Empty {
		t.Fatal("page with sections must not be empty")
	}

	body := string(result.Body)
	heroAt := strings.Index(body, "Welcome")
	ctaAt := strings.Index(body, "Call us")
	if heroAt < 0 || ctaAt < 0 || heroAt > ctaAt {
		t.Fatalf("sections out of order in body: %q", body)
	}

	if result.Head.Title != page.Title || result.Head.Description != "desc" {
		t.Fatalf("head metadata wrong: %+v", result.Head)
	}
	if result.Head.Canonical != "https://devmart.example.com/home" {
		t.Fatalf("canonical = %q", result.Head.Canonical)
	}
}

func TestRenderer_MissingPage(t *testing.T) {
	f := setupRenderer(t)

	result := f.renderer.Render(context.Background(), "nope", service.Viewer{})
	if result.State != StateNotFound {
		t.Fatalf("state = %q, want notFound", result.State)
	}
}

func TestRenderer_ArchivedIsNotFoundForEveryone(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "old", db.PageStatusArchived)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Old"})

	for name, viewer := range map[string]service.Viewer{
		"anonymous": {},
		"admin":     adminViewer,
	} {
		result := f.renderer.Render(context.Background(), "old", viewer)
		if result.State != StateNotFound {
			t.Fatalf("%s: state = %q, want notFound", name, result.State)
		}
	}
}

func TestRenderer_DraftVisibility(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "draft", db.PageStatusDraft)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "WIP"})

	anonymous := f.renderer.Render(context.Background(), "draft", service.Viewer{})
	if anonymous.State != StateNotFound {
		t.Fatalf("anonymous draft: state = %q, want notFound", anonymous.State)
	}

	editor := f.renderer.Render(context.Background(), "draft", service.Viewer{Authenticated: true, Role: db.RoleEditor})
	if editor.State != StateNotFound {
		t.Fatalf("editor draft: state = %q, want notFound", editor.State)
	}

	admin := f.renderer.Render(context.Background(), "draft", adminViewer)
	if admin.State != StateReady {
		t.Fatalf("admin draft: state = %q, want ready", admin.State)
	}
	if !admin.DraftPreview {
		t.Fatal("admin draft preview must carry the draft indicator")
	}
}

func TestRenderer_InactiveSectionsSkipped(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Visible"})
	f.addSection(t, page.ID, "CTA2_Centered", 1, db.PropsMap{"text": "Hidden"}, func(s *db.PageSection) {
		s.IsActive = false
	})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	if result.State != StateReady {
		t.Fatalf("state = %q, want ready", result.State)
	}
	body := string(result.Body)
	if !strings.Contains(body, "Visible") {
		t.Fatalf("active section missing: %q", body)
	}
	if strings.Contains(body, "Hidden") {
		t.Fatalf("inactive section rendered: %q", body)
	}
}

func TestRenderer_OrderFollowsIndexNotInsertion(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	// 先插入 order_index 较大的区块
	f.addSection(t, page.ID, "CTA2_Centered", 10, db.PropsMap{"text": "Last"})
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 1, db.PropsMap{"title": "First"})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	body := string(result.Body)
	if strings.Index(body, "First") > strings.Index(body, "Last") {
		t.Fatalf("render order must follow order_index: %q", body)
	}
}

func TestRenderer_UnknownBlockSkippedOthersRender(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Works"})
	f.addSection(t, page.ID, "Ghost_Block", 1, db.PropsMap{})
	f.addSection(t, page.ID, "CTA2_Centered", 2, db.PropsMap{"text": "Also works"})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	if result.State != StateReady {
		t.Fatalf("one bad block must not fail the page, state = %q", result.State)
	}
	body := string(result.Body)
	if !strings.Contains(body, "Works") || !strings.Contains(body, "Also works") {
		t.Fatalf("healthy sections must render: %q", body)
	}
}

func TestRenderer_EmptyPage(t *testing.T) {
	f := setupRenderer(t)
	f.createPage(t, "blank", db.PageStatusPublished)

	result := f.renderer.Render(context.Background(), "blank", service.Viewer{})
	if result.State != StateReady {
		t.Fatalf("state = %q, want ready", result.State)
	}
	if !result.Empty {
		t.Fatal("page without sections must report empty")
	}
	if !strings.Contains(string(result.Body), "No content available") {
		t.Fatalf("empty body fragment missing: %q", result.Body)
	}
}

func TestRenderer_WrappingRules(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Contained"})
	f.addSection(t, page.ID, "Marquee1_Scrolling", 1, db.PropsMap{"text": "Ribbon"})
	f.addSection(t, page.ID, "CTA2_Centered", 2, db.PropsMap{"text": "Bare"}, func(s *db.PageSection) {
		s.HasContainer = false
	})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	body := string(result.Body)

	if !strings.Contains(body, `<div class="container"><h1 class="hero">Contained</h1></div>`) {
		t.Fatalf("default block missing container: %q", body)
	}
	// 通栏区块即便 has_container 为真也不包 container
	if strings.Contains(body, `<div class="container"><div class="marquee">`) {
		t.Fatalf("full-bleed block must not get a container: %q", body)
	}
	if strings.Contains(body, `<div class="container"><p class="cta">Bare</p></div>`) {
		t.Fatalf("has_container=false block must not get a container: %q", body)
	}
}

func TestRenderer_WrapperClassAndSpacers(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.addSection(t, page.ID, "Hero1_CreativeAgency", 0, db.PropsMap{"title": "Hi"}, func(s *db.PageSection) {
		s.SectionWrapperClass = `dark-band"><script>`
		s.SpacingAfterLg = 95
		s.SpacingAfterMd = 70
	})

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	body := string(result.Body)

	if strings.Contains(body, "<script>") {
		t.Fatalf("wrapper class must be escaped: %q", body)
	}
	if !strings.Contains(body, `style="height:95px"`) || !strings.Contains(body, `style="height:70px"`) {
		t.Fatalf("spacers missing: %q", body)
	}
}

func TestRenderer_UnknownLayoutFallsBack(t *testing.T) {
	f := setupRenderer(t)
	page := f.createPage(t, "home", db.PageStatusPublished)
	f.gdb.Model(page).Update("layout", "Layout9")

	result := f.renderer.Render(context.Background(), "home", service.Viewer{})
	if result.Layout != db.DefaultLayout {
		t.Fatalf("layout = %q, want fallback %q", result.Layout, db.DefaultLayout)
	}
}
