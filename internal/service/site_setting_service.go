package service

import (
	"fmt"
	"strings"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/theme"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings 描述后台可配置的站点信息。
type SiteSettings struct {
	SiteName    string
	SiteLogoURL string
	HomeSlug    string
	Branding    theme.Branding
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	SiteName    string
	SiteLogoURL string
	HomeSlug    string
	Branding    theme.Branding
}

// SiteSettingService 提供站点设置的读取与更新能力。
type SiteSettingService struct {
	db *gorm.DB
}

// NewSiteSettingService 构造 SiteSettingService。
func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeySiteLogoURL,
	db.SettingKeyHomeSlug,
	db.SettingKeyBrandPrimary,
	db.SettingKeyBrandSecondary,
	db.SettingKeyBrandAccent,
}

// GetSettings 读取站点设置，如未设置将返回默认值。
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := SiteSettings{SiteName: "Devmart", HomeSlug: "home"}

	var records []db.SystemSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		value := strings.TrimSpace(record.Value)
		switch record.Key {
		case db.SettingKeySiteName:
			if value != "" {
				result.SiteName = value
			}
		case db.SettingKeySiteLogoURL:
			result.SiteLogoURL = value
		case db.SettingKeyHomeSlug:
			if ValidateSlug(value) {
				result.HomeSlug = value
			}
		case db.SettingKeyBrandPrimary:
			result.Branding.Primary = value
		case db.SettingKeyBrandSecondary:
			result.Branding.Secondary = value
		case db.SettingKeyBrandAccent:
			result.Branding.Accent = value
		}
	}

	return result, nil
}

// UpdateSettings 保存站点设置，未填写站点名称时回退默认值。
func (s *SiteSettingService) UpdateSettings(input SiteSettingsInput) (SiteSettings, error) {
	sanitized := SiteSettings{
		SiteName:    strings.TrimSpace(input.SiteName),
		SiteLogoURL: strings.TrimSpace(input.SiteLogoURL),
		HomeSlug:    strings.TrimSpace(input.HomeSlug),
		Branding: theme.Branding{
			Primary:   strings.TrimSpace(input.Branding.Primary),
			Secondary: strings.TrimSpace(input.Branding.Secondary),
			Accent:    strings.TrimSpace(input.Branding.Accent),
		},
	}
	if sanitized.SiteName == "" {
		sanitized.SiteName = "Devmart"
	}
	if sanitized.HomeSlug == "" || !ValidateSlug(sanitized.HomeSlug) {
		sanitized.HomeSlug = "home"
	}

	values := map[string]string{
		db.SettingKeySiteName:       sanitized.SiteName,
		db.SettingKeySiteLogoURL:    sanitized.SiteLogoURL,
		db.SettingKeyHomeSlug:       sanitized.HomeSlug,
		db.SettingKeyBrandPrimary:   sanitized.Branding.Primary,
		db.SettingKeyBrandSecondary: sanitized.Branding.Secondary,
		db.SettingKeyBrandAccent:    sanitized.Branding.Accent,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			record := db.SystemSetting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return sanitized, fmt.Errorf("save site settings: %w", err)
	}

	return sanitized, nil
}
