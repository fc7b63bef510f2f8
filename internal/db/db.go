package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 devmart.db。
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "devmart.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	if err = DB.AutoMigrate(
		&User{},
		&Page{},
		&PageSection{},
		&NavigationItem{},
		&ContactSubmission{},
		&SystemSetting{},
	); err != nil {
		return err
	}

	migrator := DB.Migrator()

	// slug 唯一性只约束未删除的页面，软删除保留旧行，
	// 因此不能依赖数据库级唯一索引，由 PageService 负责校验
	if migrator.HasIndex(&Page{}, "idx_pages_slug") {
		if dropErr := migrator.DropIndex(&Page{}, "idx_pages_slug"); dropErr != nil {
			return dropErr
		}
	}

	if err := DB.Model(&User{}).
		Where("role = '' OR role IS NULL").
		Update("role", string(RoleViewer)).Error; err != nil {
		return err
	}
	if err := DB.Model(&Page{}).
		Where("layout = '' OR layout IS NULL").
		Update("layout", DefaultLayout).Error; err != nil {
		return err
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
