package db

import "gorm.io/gorm"

// PropsMap 是区块的配置文档，键值形态由目标区块模板决定。
type PropsMap map[string]interface{}

// PageSection 定义了页面上的一个区块实例。
// order_index 升序决定渲染顺序，相同值以 id 升序兜底。
type PageSection struct {
	gorm.Model
	PageID              uint     `gorm:"index;not null" json:"page_id"`
	BlockType           string   `gorm:"not null" json:"block_type"`
	BlockProps          PropsMap `gorm:"serializer:json" json:"block_props"`
	OrderIndex          int      `gorm:"not null" json:"order_index"`
	IsActive            bool     `gorm:"default:true" json:"is_active"`
	HasContainer        bool     `gorm:"default:true" json:"has_container"`
	SpacingAfterLg      int      `json:"spacing_after_lg"`
	SpacingAfterMd      int      `json:"spacing_after_md"`
	SectionWrapperClass string   `json:"section_wrapper_class"`
}

// TableName 自定义表名以保持命名一致。
func (PageSection) TableName() string {
	return "page_sections"
}
