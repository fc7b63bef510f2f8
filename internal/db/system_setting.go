package db

import "gorm.io/gorm"

// SystemSetting 存储后台可配置的系统级键值对。
type SystemSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SystemSetting) TableName() string {
	return "system_settings"
}

const (
	// SettingKeySiteName 表示站点名称。
	SettingKeySiteName = "site_name"
	// SettingKeySiteLogoURL 表示站点 Logo 链接。
	SettingKeySiteLogoURL = "site_logo_url"
	// SettingKeyHomeSlug 表示根路由对应的页面 slug。
	SettingKeyHomeSlug = "home_slug"
	// SettingKeyBrandPrimary 表示品牌主色（十六进制）。
	SettingKeyBrandPrimary = "brand_primary"
	// SettingKeyBrandSecondary 表示品牌辅色（十六进制）。
	SettingKeyBrandSecondary = "brand_secondary"
	// SettingKeyBrandAccent 表示品牌强调色（十六进制）。
	SettingKeyBrandAccent = "brand_accent"
)
