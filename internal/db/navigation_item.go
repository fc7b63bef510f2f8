package db

import "gorm.io/gorm"

// NavigationLocation 表示导航项展示的位置。
type NavigationLocation string

const (
	NavigationHeader NavigationLocation = "header"
	NavigationFooter NavigationLocation = "footer"
)

// NavigationItem 定义了站点导航菜单中的一项。
type NavigationItem struct {
	gorm.Model
	Label      string             `gorm:"not null" json:"label"`
	URL        string             `gorm:"not null" json:"url"`
	Location   NavigationLocation `gorm:"default:header" json:"location"`
	OrderIndex int                `gorm:"not null" json:"order_index"`
	IsVisible  bool               `gorm:"default:true" json:"is_visible"`
}
