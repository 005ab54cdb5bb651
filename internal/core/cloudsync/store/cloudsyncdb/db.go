package cloudsyncdb

import (
	"github.com/gowvp/camclip/internal/core/cloudsync"
	"gorm.io/gorm"
)

type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

// AutoMigrate 按开关执行表结构迁移
func (d *DB) AutoMigrate(ok bool) *DB {
	if ok {
		if err := d.db.AutoMigrate(&cloudsync.DownloadedFile{}, &cloudsync.SyncStatus{}); err != nil {
			panic(err)
		}
	}
	return d
}

func (d *DB) DownloadedFile() cloudsync.DownloadedFileStorer {
	return DownloadedFile{db: d.db}
}

func (d *DB) SyncStatus() cloudsync.SyncStatusStorer {
	return SyncStatus{db: d.db}
}
