package db

import "gorm.io/gorm"

// ContactSubmission 存储前台联系表单的提交记录。
// Reference 是展示给访客的查询编号。
type ContactSubmission struct {
	gorm.Model
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Subject   string `json:"subject"`
	Message   string `gorm:"type:text" json:"message"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`
}
