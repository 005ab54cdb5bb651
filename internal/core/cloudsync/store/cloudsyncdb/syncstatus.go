package cloudsyncdb

import (
	"context"

	"github.com/gowvp/camclip/internal/core/cloudsync"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ cloudsync.SyncStatusStorer = SyncStatus{}

type SyncStatus struct {
	db *gorm.DB
}

func (s SyncStatus) scope(ctx context.Context, opts ...orm.QueryOption) *gorm.DB {
	tx := s.db.WithContext(ctx)
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

// Find implements cloudsync.SyncStatusStorer.
func (s SyncStatus) Find(ctx context.Context, items *[]*cloudsync.SyncStatus, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	tx := s.scope(ctx, opts...).Model(&cloudsync.SyncStatus{})
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

// Get implements cloudsync.SyncStatusStorer.
func (s SyncStatus) Get(ctx context.Context, out *cloudsync.SyncStatus, opts ...orm.QueryOption) error {
	return s.scope(ctx, opts...).First(out).Error
}

// Session implements cloudsync.SyncStatusStorer.
func (s SyncStatus) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
