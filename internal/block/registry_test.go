package block

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write template %s: %v", name, err)
	}
}

func testDefinitions() []Definition {
	return []Definition{
		{
			Type:         "Hero1_CreativeAgency",
			TemplateFile: "hero.html",
			Wrapping:     WrapDefault,
			DefaultProps: map[string]interface{}{
				"title": "Hello",
				"items": []interface{}{map[string]interface{}{"label": "one"}},
			},
		},
		{
			Type:         "Marquee1_Scrolling",
			TemplateFile: "marquee.html",
			Wrapping:     WrapFullBleed,
		},
		{
			Type:         "Broken_Block",
			TemplateFile: "missing.html",
			Wrapping:     WrapDefault,
		},
	}
}

func setupRegistry(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()
	writeTemplate(t, dir, "hero.html", `<h1>{{.title}}</h1>`)
	writeTemplate(t, dir, "marquee.html", `<div class="marquee">{{.text}}</div>`)
	return NewRegistryWithDefinitions(dir, testDefinitions())
}

func TestRegistry_ResolveCachesTemplate(t *testing.T) {
	registry := setupRegistry(t)

	first, err := registry.Resolve("Hero1_CreativeAgency")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := registry.Resolve("Hero1_CreativeAgency")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second {
		t.Fatal("expected the cached block pointer on repeat resolves")
	}
}

func TestRegistry_ResolveUnknownType(t *testing.T) {
	registry := setupRegistry(t)

	if _, err := registry.Resolve("Nope_Block"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestRegistry_ResolveMissingTemplateFile(t *testing.T) {
	registry := setupRegistry(t)

	if _, err := registry.Resolve("Broken_Block"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound for a missing template, got %v", err)
	}
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	registry := setupRegistry(t)

	const workers = 16
	blocks := make([]*Block, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolved, err := registry.Resolve("Hero1_CreativeAgency")
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			blocks[i] = resolved
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if blocks[i] != blocks[0] {
			t.Fatal("concurrent resolves must share one loaded block")
		}
	}
}

func TestRegistry_DefaultPropsDeepCopy(t *testing.T) {
	registry := setupRegistry(t)

	props, ok := registry.DefaultProps("Hero1_CreativeAgency")
	if !ok {
		t.Fatal("expected default props for a registered type")
	}

	props["title"] = "mutated"
	props["items"].([]interface{})[0].(map[string]interface{})["label"] = "mutated"

	again, _ := registry.DefaultProps("Hero1_CreativeAgency")
	if again["title"] != "Hello" {
		t.Fatalf("top-level default mutated: %v", again["title"])
	}
	label := again["items"].([]interface{})[0].(map[string]interface{})["label"]
	if label != "one" {
		t.Fatalf("nested default mutated: %v", label)
	}
}

func TestRegistry_DefaultPropsUnknownType(t *testing.T) {
	registry := setupRegistry(t)

	if _, ok := registry.DefaultProps("Nope_Block"); ok {
		t.Fatal("unknown type must not report default props")
	}
}

func TestRegistry_WrappingRule(t *testing.T) {
	registry := setupRegistry(t)

	if got := registry.Wrapping("Marquee1_Scrolling"); got != WrapFullBleed {
		t.Fatalf("marquee wrapping = %q, want full-bleed", got)
	}
	if got := registry.Wrapping("Hero1_CreativeAgency"); got != WrapDefault {
		t.Fatalf("hero wrapping = %q, want default", got)
	}
	if got := registry.Wrapping("Nope_Block"); got != WrapDefault {
		t.Fatalf("unknown type wrapping = %q, want default fallback", got)
	}
}

func TestBlock_RenderEscapesProps(t *testing.T) {
	registry := setupRegistry(t)

	resolved, err := registry.Resolve("Hero1_CreativeAgency")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	html, err := resolved.Render(map[string]interface{}{"title": "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("props must be escaped, got %q", html)
	}
}

func TestBlock_RenderMarkdownHelper(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "prose.html", `<section>{{markdown .content}}</section>`)
	registry := NewRegistryWithDefinitions(dir, []Definition{
		{Type: "Content1_Markdown", TemplateFile: "prose.html", Wrapping: WrapDefault},
	})

	resolved, err := registry.Resolve("Content1_Markdown")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	html, err := resolved.Render(map[string]interface{}{"content": "## Heading\n\n<script>x</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), "<h2") {
		t.Fatalf("markdown heading missing from %q", html)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("markdown output must be sanitized, got %q", html)
	}
}

func TestCatalog_EveryEntryComplete(t *testing.T) {
	for _, def := range Catalog() {
		if def.Type == "" || def.Name == "" || def.Category == "" || def.TemplateFile == "" {
			t.Fatalf("incomplete catalog entry: %+v", def)
		}
		if def.Wrapping != WrapDefault && def.Wrapping != WrapFullBleed {
			t.Fatalf("catalog entry %s has unknown wrapping %q", def.Type, def.Wrapping)
		}
	}
}
