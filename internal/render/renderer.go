// Package render turns a slug plus a viewer into the final page body.
// It is the read path over the page store: visibility rules, ordered section
// fetch, block resolution and layout wrapping all live here.
package render

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/devmart/internal/block"
	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"golang.org/x/sync/errgroup"
)

// State 是渲染状态机的终态。
type State string

const (
	StateReady       State = "ready"
	StateNotFound    State = "notFound"
	StateServerError State = "serverError"
)

// Head carries the document-head metadata for a successful render.
type Head struct {
	Title       string
	Description string
	Keywords    string
	SocialImage string
	Canonical   string
}

// Result is the outcome of one render pass.
type Result struct {
	State        State
	Page         *db.Page
	Head         Head
	Layout       string
	Body         template.HTML
	DraftPreview bool
	Empty        bool
}

// Renderer resolves pages against the store and the block registry.
type Renderer struct {
	pages    *service.PageService
	sections *service.SectionService
	registry *block.Registry
	baseURL  string
	timeout  time.Duration
}

// New constructs a Renderer. timeout bounds the page and section fetches so a
// hung store call cannot leave a request loading forever.
func New(pages *service.PageService, sections *service.SectionService, registry *block.Registry, baseURL string, timeout time.Duration) *Renderer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Renderer{
		pages:    pages,
		sections: sections,
		registry: registry,
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
	}
}

// Render fetches the page for slug, applies the visibility rules for viewer
// and assembles the body. A missing or forbidden page is notFound; any store
// failure is serverError and no partial page is returned.
func (r *Renderer) Render(ctx context.Context, slug string, viewer service.Viewer) Result {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := r.pages.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return Result{State: StateNotFound}
		}
		log.Printf("render %q: fetch page: %v", slug, err)
		return Result{State: StateServerError}
	}

	visibility := service.ResolveVisibility(page, viewer)
	if visibility == service.VisibilityHidden {
		return Result{State: StateNotFound}
	}

	sections, err := r.sections.ListForPage(ctx, page.ID, true)
	if err != nil {
		log.Printf("render %q: fetch sections: %v", slug, err)
		return Result{State: StateServerError}
	}

	// 存储层已按顺序返回，这里再显式排序一次作为纵深防御：
	// 渲染顺序只取决于 (order_index, id)，与响应顺序无关
	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].OrderIndex != sections[j].OrderIndex {
			return sections[i].OrderIndex < sections[j].OrderIndex
		}
		return sections[i].ID < sections[j].ID
	})

	blocks := r.resolveAll(ctx, sections)

	result := Result{
		State:        StateReady,
		Page:         page,
		Layout:       layoutFor(page),
		DraftPreview: visibility == service.VisibilityDraftPreview,
		Head: Head{
			Title:       page.Title,
			Description: page.MetaDescription,
			Keywords:    page.MetaKeywords,
			SocialImage: page.SEOImage,
			Canonical:   r.baseURL + "/" + page.Slug,
		},
	}

	body := r.assemble(sections, blocks)
	if body == "" {
		result.Empty = true
		result.Body = emptyStateBody
		return result
	}

	result.Body = template.HTML(body)
	return result
}

// resolveAll loads every section's block concurrently. Order is preserved by
// index; a failed resolution leaves a nil slot and the section is skipped.
func (r *Renderer) resolveAll(ctx context.Context, sections []db.PageSection) []*block.Block {
	blocks := make([]*block.Block, len(sections))
	group, _ := errgroup.WithContext(ctx)

	for i, section := range sections {
		group.Go(func() error {
			resolved, err := r.registry.Resolve(section.BlockType)
			if err != nil {
				// 单个坏区块绝不能中断整页渲染，跳过并记录
				log.Printf("render: section %d: block %q unavailable: %v", section.ID, section.BlockType, err)
				return nil
			}
			blocks[i] = resolved
			return nil
		})
	}

	// 所有 goroutine 都吞掉了错误，Wait 仅用于汇合
	_ = group.Wait()
	return blocks
}

func (r *Renderer) assemble(sections []db.PageSection, blocks []*block.Block) string {
	var sb strings.Builder
	for i, section := range sections {
		resolved := blocks[i]
		if resolved == nil {
			continue
		}

		inner, err := resolved.Render(section.BlockProps)
		if err != nil {
			log.Printf("render: section %d: %v", section.ID, err)
			continue
		}

		html := string(inner)
		if section.HasContainer && resolved.Wrapping == block.WrapDefault {
			html = `<div class="container">` + html + `</div>`
		}
		if class := strings.TrimSpace(section.SectionWrapperClass); class != "" {
			html = fmt.Sprintf(`<div class="%s">%s</div>`, template.HTMLEscapeString(class), html)
		}

		sb.WriteString(html)
		writeSpacers(&sb, section)
	}
	return sb.String()
}

// writeSpacers injects the per-breakpoint vertical spacing after a section.
func writeSpacers(sb *strings.Builder, section db.PageSection) {
	if section.SpacingAfterLg > 0 {
		fmt.Fprintf(sb, `<div class="spacer-lg" style="height:%dpx"></div>`, section.SpacingAfterLg)
	}
	if section.SpacingAfterMd > 0 {
		fmt.Fprintf(sb, `<div class="spacer-md" style="height:%dpx"></div>`, section.SpacingAfterMd)
	}
}

func layoutFor(page *db.Page) string {
	if db.IsValidLayout(page.Layout) {
		return page.Layout
	}
	return db.DefaultLayout
}

var emptyStateBody = template.HTML(
	`<div class="container page-empty-state"><h2>No content available</h2>` +
		`<p>This page doesn't have any content yet.</p></div>`)
