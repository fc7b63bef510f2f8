package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/devmart/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrPageTitleMissing = errors.New("page title is required")
	ErrSlugInvalid      = errors.New("page slug is invalid")
	ErrSlugTaken        = errors.New("page slug is already in use")
	ErrPageArchived     = errors.New("archived pages cannot be edited")
	ErrStatusTransition = errors.New("invalid page status transition")
	ErrLayoutUnknown    = errors.New("unknown page layout")
	ErrDeleteNotAllowed = errors.New("only admins may delete pages")
	ErrStatusUnknown    = errors.New("unknown page status")
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlug     = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash   = regexp.MustCompile(`-+`)
)

// Viewer 描述一次页面请求的访问者身份。
type Viewer struct {
	Authenticated bool
	Role          db.Role
}

// Visibility 是可见性判定结果。
type Visibility int

const (
	VisibilityHidden Visibility = iota
	VisibilityPublic
	VisibilityDraftPreview
)

// PageService wraps page related database operations.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// PageInput represents fields accepted when creating or updating a page.
type PageInput struct {
	Slug            string
	Title           string
	MetaDescription string
	MetaKeywords    string
	SEOImage        string
	Layout          string
	CreatedBy       uint
}

// PageFilter describes filters for listing pages in the admin panel.
type PageFilter struct {
	Search  string
	Status  db.PageStatus
	Page    int
	PerPage int
}

// PageListResult aggregates paginated list data and counters.
type PageListResult struct {
	Pages          []db.Page
	Total          int64
	PublishedCount int64
	DraftCount     int64
	ArchivedCount  int64
	TotalPages     int
	Page           int
	PerPage        int
}

// MakeSlug 把任意标题归一化为 URL 安全的 slug，如 "About Us" -> "about-us"。
func MakeSlug(raw string) string {
	base := strings.ToLower(strings.TrimSpace(raw))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// ValidateSlug reports whether slug matches the lowercase alnum+hyphen shape
// with no leading or trailing hyphen.
func ValidateSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// ResolveVisibility applies the lifecycle rules: archived pages are never
// reachable through the public path, drafts only for admin-or-higher viewers.
func ResolveVisibility(page *db.Page, viewer Viewer) Visibility {
	if page == nil {
		return VisibilityHidden
	}
	switch page.Status {
	case db.PageStatusArchived:
		return VisibilityHidden
	case db.PageStatusDraft:
		if viewer.Authenticated && (viewer.Role == db.RoleAdmin || viewer.Role == db.RoleSuperAdmin) {
			return VisibilityDraftPreview
		}
		return VisibilityHidden
	default:
		return VisibilityPublic
	}
}

// GetBySlug fetches a non-deleted page for a given slug.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// GetByID fetches a page by primary key.
func (s *PageService) GetByID(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// List returns pages filtered for the admin list view.
func (s *PageService) List(filter PageFilter) (PageListResult, error) {
	result := PageListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page < 1 {
		result.Page = 1
	}
	if result.PerPage < 1 {
		result.PerPage = 20
	}

	query := s.db.Model(&db.Page{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR slug LIKE ?", like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	s.db.Model(&db.Page{}).Where("status = ?", db.PageStatusPublished).Count(&result.PublishedCount)
	s.db.Model(&db.Page{}).Where("status = ?", db.PageStatusDraft).Count(&result.DraftCount)
	s.db.Model(&db.Page{}).Where("status = ?", db.PageStatusArchived).Count(&result.ArchivedCount)

	offset := (result.Page - 1) * result.PerPage
	if err := query.Order("updated_at desc").Limit(result.PerPage).Offset(offset).Find(&result.Pages).Error; err != nil {
		return result, err
	}

	result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	return result, nil
}

// Create inserts a new draft page after validating slug shape and uniqueness.
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPageTitleMissing
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = MakeSlug(title)
	}
	if !ValidateSlug(slug) {
		return nil, ErrSlugInvalid
	}

	taken, err := s.slugTaken(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	layout := strings.TrimSpace(input.Layout)
	if layout == "" {
		layout = db.DefaultLayout
	}
	if !db.IsValidLayout(layout) {
		return nil, ErrLayoutUnknown
	}

	page := db.Page{
		Slug:            slug,
		Title:           title,
		MetaDescription: strings.TrimSpace(input.MetaDescription),
		MetaKeywords:    strings.TrimSpace(input.MetaKeywords),
		SEOImage:        strings.TrimSpace(input.SEOImage),
		Layout:          layout,
		Status:          db.PageStatusDraft,
		CreatedBy:       input.CreatedBy,
	}
	if err := s.db.Create(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// Update edits page metadata. Archived pages reject edits.
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page.Status == db.PageStatusArchived {
		return nil, ErrPageArchived
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPageTitleMissing
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = page.Slug
	}
	if !ValidateSlug(slug) {
		return nil, ErrSlugInvalid
	}
	if slug != page.Slug {
		taken, err := s.slugTaken(slug, page.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	layout := strings.TrimSpace(input.Layout)
	if layout == "" {
		layout = page.Layout
	}
	if !db.IsValidLayout(layout) {
		return nil, ErrLayoutUnknown
	}

	page.Slug = slug
	page.Title = title
	page.MetaDescription = strings.TrimSpace(input.MetaDescription)
	page.MetaKeywords = strings.TrimSpace(input.MetaKeywords)
	page.SEOImage = strings.TrimSpace(input.SEOImage)
	page.Layout = layout

	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// SetStatus moves a page along the draft -> published -> archived lifecycle.
func (s *PageService) SetStatus(id uint, status db.PageStatus) (*db.Page, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch status {
	case db.PageStatusDraft, db.PageStatusPublished, db.PageStatusArchived:
	default:
		return nil, ErrStatusUnknown
	}

	if !statusTransitionAllowed(page.Status, status) {
		return nil, ErrStatusTransition
	}

	page.Status = status
	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page and cascades to its sections. Only admin-or-higher
// callers may delete; the role gate is re-checked here so the rule holds for
// every HTTP surface.
func (s *PageService) Delete(id uint, actor Viewer) error {
	if !actor.Authenticated || (actor.Role != db.RoleAdmin && actor.Role != db.RoleSuperAdmin) {
		return ErrDeleteNotAllowed
	}

	page, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", page.ID).Delete(&db.PageSection{}).Error; err != nil {
			return err
		}
		return tx.Delete(page).Error
	})
}

func (s *PageService) slugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&db.Page{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func statusTransitionAllowed(from, to db.PageStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case db.PageStatusDraft:
		return to == db.PageStatusPublished
	case db.PageStatusPublished:
		return to == db.PageStatusArchived || to == db.PageStatusDraft
	default:
		return false
	}
}
