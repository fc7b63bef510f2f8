package service

import (
	"context"
	"errors"
	"strings"

	"github.com/devmart/internal/block"
	"github.com/devmart/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrBlockTypeUnknown = errors.New("block type is not registered")
	ErrReorderMismatch  = errors.New("reorder list does not match the page's sections")
)

// 新区块的默认布局参数，对齐后台选择器的插入行为。
const (
	DefaultSpacingAfterLg = 95
	DefaultSpacingAfterMd = 70
)

// SectionService wraps page section database operations for the builder.
type SectionService struct {
	db       *gorm.DB
	registry *block.Registry
}

// NewSectionService returns a new SectionService instance.
func NewSectionService(gdb *gorm.DB, registry *block.Registry) *SectionService {
	return &SectionService{db: gdb, registry: registry}
}

// SectionLayoutInput carries the layout fields edited alongside props.
type SectionLayoutInput struct {
	HasContainer        bool
	SpacingAfterLg      int
	SpacingAfterMd      int
	SectionWrapperClass string
}

// ListForPage returns a page's sections ordered by order_index ascending.
// order_index 并不保证连续，同值时以 id 升序兜底保持稳定。
func (s *SectionService) ListForPage(ctx context.Context, pageID uint, activeOnly bool) ([]db.PageSection, error) {
	query := s.db.WithContext(ctx).Where("page_id = ?", pageID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var sections []db.PageSection
	if err := query.Order("order_index asc, id asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// AddSection inserts a new section at the end of the page with the block's
// default props. The new order_index is strictly greater than every existing
// one, so fresh sections always render last until reordered.
func (s *SectionService) AddSection(pageID uint, blockType string) (*db.PageSection, error) {
	blockType = strings.TrimSpace(blockType)
	defaults, ok := s.registry.DefaultProps(blockType)
	if !ok {
		return nil, ErrBlockTypeUnknown
	}

	nextIndex := 0
	var last db.PageSection
	err := s.db.Where("page_id = ?", pageID).Order("order_index desc").First(&last).Error
	switch {
	case err == nil:
		nextIndex = last.OrderIndex + 1
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	section := db.PageSection{
		PageID:         pageID,
		BlockType:      blockType,
		BlockProps:     defaults,
		OrderIndex:     nextIndex,
		IsActive:       true,
		HasContainer:   true,
		SpacingAfterLg: DefaultSpacingAfterLg,
		SpacingAfterMd: DefaultSpacingAfterMd,
	}
	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Reorder assigns order_index = position for the given full ordering.
// The whole write runs in one transaction: either every row gets its new
// position or none does, so a partial reorder never persists silently.
// Callers still re-fetch the authoritative order on failure.
func (s *SectionService) Reorder(ctx context.Context, pageID uint, orderedIDs []uint) error {
	existing, err := s.ListForPage(ctx, pageID, false)
	if err != nil {
		return err
	}
	if len(existing) != len(orderedIDs) {
		return ErrReorderMismatch
	}

	known := make(map[uint]bool, len(existing))
	for _, section := range existing {
		known[section.ID] = true
	}
	for _, id := range orderedIDs {
		if !known[id] {
			return ErrReorderMismatch
		}
		delete(known, id)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&db.PageSection{}).
				Where("id = ? AND page_id = ?", id, pageID).
				Update("order_index", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// ToggleActive flips a section's visibility without touching anything else.
func (s *SectionService) ToggleActive(sectionID uint, value bool) (*db.PageSection, error) {
	section, err := s.getByID(sectionID)
	if err != nil {
		return nil, err
	}

	section.IsActive = value
	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateProps replaces the whole props document and the layout fields.
// The document is stored verbatim so an immediate fetch round-trips the
// identical value.
func (s *SectionService) UpdateProps(sectionID uint, props db.PropsMap, layout SectionLayoutInput) (*db.PageSection, error) {
	section, err := s.getByID(sectionID)
	if err != nil {
		return nil, err
	}

	if props == nil {
		props = db.PropsMap{}
	}

	section.BlockProps = props
	section.HasContainer = layout.HasContainer
	section.SpacingAfterLg = layout.SpacingAfterLg
	section.SpacingAfterMd = layout.SpacingAfterMd
	section.SectionWrapperClass = strings.TrimSpace(layout.SectionWrapperClass)

	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// DeleteSection removes one section from its page.
func (s *SectionService) DeleteSection(sectionID uint) error {
	section, err := s.getByID(sectionID)
	if err != nil {
		return err
	}
	return s.db.Delete(section).Error
}

// GetByID fetches a single section.
func (s *SectionService) GetByID(sectionID uint) (*db.PageSection, error) {
	return s.getByID(sectionID)
}

func (s *SectionService) getByID(sectionID uint) (*db.PageSection, error) {
	var section db.PageSection
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}
