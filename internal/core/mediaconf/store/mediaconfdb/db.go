package mediaconfdb

import (
	"context"

	"github.com/gowvp/camclip/internal/core/mediaconf"
	"github.com/ixugo/goddd/pkg/orm"
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
		if err := d.db.AutoMigrate(&mediaconf.ProcessingConfig{}); err != nil {
			panic(err)
		}
	}
	return d
}

func (d *DB) ProcessingConfig() mediaconf.ProcessingConfigStorer {
	return ProcessingConfig{db: d.db}
}

var _ mediaconf.ProcessingConfigStorer = ProcessingConfig{}

type ProcessingConfig struct {
	db *gorm.DB
}

// Get implements mediaconf.ProcessingConfigStorer.
func (p ProcessingConfig) Get(ctx context.Context, out *mediaconf.ProcessingConfig, opts ...orm.QueryOption) error {
	tx := p.db.WithContext(ctx)
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx.First(out).Error
}

// Session implements mediaconf.ProcessingConfigStorer.
func (p ProcessingConfig) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
