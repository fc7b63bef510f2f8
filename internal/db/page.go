package db

import "gorm.io/gorm"

// PageStatus 表示页面的发布生命周期状态。
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// 可用的页面外壳布局，未知值回退到 DefaultLayout。
const DefaultLayout = "Layout"

var PageLayouts = []string{"Layout", "Layout2", "Layout3"}

// Page 定义了由区块组合而成的动态页面。
type Page struct {
	gorm.Model
	Slug            string     `gorm:"index;not null" json:"slug"`
	Title           string     `gorm:"not null" json:"title"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	SEOImage        string     `gorm:"column:seo_image" json:"seo_image"`
	Layout          string     `gorm:"default:Layout" json:"layout"`
	Status          PageStatus `gorm:"default:draft" json:"status"`
	CreatedBy       uint       `json:"created_by"`
}

// IsValidLayout 校验布局名称是否在固定枚举内。
func IsValidLayout(layout string) bool {
	for _, candidate := range PageLayouts {
		if candidate == layout {
			return true
		}
	}
	return false
}
