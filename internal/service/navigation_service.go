package service

import (
	"errors"
	"strings"

	"github.com/devmart/internal/db"
	"gorm.io/gorm"
)

var (
	ErrNavigationNotFound = errors.New("navigation item not found")
	ErrNavigationInvalid  = errors.New("navigation label and url are required")
)

// NavigationService manages the site's header and footer menus.
type NavigationService struct {
	db *gorm.DB
}

// NewNavigationService returns a new NavigationService instance.
func NewNavigationService(gdb *gorm.DB) *NavigationService {
	return &NavigationService{db: gdb}
}

// NavigationInput represents fields accepted when creating or updating an item.
type NavigationInput struct {
	Label    string
	URL      string
	Location db.NavigationLocation
}

// List returns menu items for one location ordered for display.
func (s *NavigationService) List(location db.NavigationLocation, visibleOnly bool) ([]db.NavigationItem, error) {
	query := s.db.Where("location = ?", location)
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}

	var items []db.NavigationItem
	if err := query.Order("order_index asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create appends a new menu item at the end of its location.
func (s *NavigationService) Create(input NavigationInput) (*db.NavigationItem, error) {
	label := strings.TrimSpace(input.Label)
	url := strings.TrimSpace(input.URL)
	if label == "" || url == "" {
		return nil, ErrNavigationInvalid
	}

	location := input.Location
	if location != db.NavigationHeader && location != db.NavigationFooter {
		location = db.NavigationHeader
	}

	nextIndex := 0
	var last db.NavigationItem
	err := s.db.Where("location = ?", location).Order("order_index desc").First(&last).Error
	switch {
	case err == nil:
		nextIndex = last.OrderIndex + 1
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	item := db.NavigationItem{
		Label:      label,
		URL:        url,
		Location:   location,
		OrderIndex: nextIndex,
		IsVisible:  true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update edits label, url and visibility of one item.
func (s *NavigationService) Update(id uint, input NavigationInput, visible bool) (*db.NavigationItem, error) {
	item, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(input.Label)
	url := strings.TrimSpace(input.URL)
	if label == "" || url == "" {
		return nil, ErrNavigationInvalid
	}

	item.Label = label
	item.URL = url
	item.IsVisible = visible
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Reorder assigns order_index = position within one location.
func (s *NavigationService) Reorder(location db.NavigationLocation, orderedIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&db.NavigationItem{}).
				Where("id = ? AND location = ?", id, location).
				Update("order_index", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// Delete removes one menu item.
func (s *NavigationService) Delete(id uint) error {
	item, err := s.getByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

func (s *NavigationService) getByID(id uint) (*db.NavigationItem, error) {
	var item db.NavigationItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNavigationNotFound
		}
		return nil, err
	}
	return &item, nil
}
