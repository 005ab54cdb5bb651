package cloudsyncdb

import (
	"context"

	"github.com/gowvp/camclip/internal/core/cloudsync"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ cloudsync.DownloadedFileStorer = DownloadedFile{}

type DownloadedFile struct {
	db *gorm.DB
}

func (d DownloadedFile) scope(ctx context.Context, opts ...orm.QueryOption) *gorm.DB {
	tx := d.db.WithContext(ctx)
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

// Find implements cloudsync.DownloadedFileStorer.
func (d DownloadedFile) Find(ctx context.Context, items *[]*cloudsync.DownloadedFile, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	tx := d.scope(ctx, opts...).Model(&cloudsync.DownloadedFile{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	if pager != nil {
		tx = tx.Offset(pager.Offset()).Limit(pager.Limit())
	}
	if err := tx.Find(items).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Add implements cloudsync.DownloadedFileStorer.
func (d DownloadedFile) Add(ctx context.Context, in *cloudsync.DownloadedFile) error {
	return d.db.WithContext(ctx).Create(in).Error
}

// Session implements cloudsync.DownloadedFileStorer.
func (d DownloadedFile) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
