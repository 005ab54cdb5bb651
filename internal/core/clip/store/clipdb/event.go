package clipdb

import (
	"context"

	"github.com/gowvp/camclip/internal/core/clip"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ clip.EventStorer = Event{}

type Event struct {
	db *gorm.DB
}

func (e Event) scope(ctx context.Context, opts ...orm.QueryOption) *gorm.DB {
	tx := e.db.WithContext(ctx)
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

// Find implements clip.EventStorer.
func (e Event) Find(ctx context.Context, items *[]*clip.Event, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	tx := e.scope(ctx, opts...).Model(&clip.Event{})
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

// Get implements clip.EventStorer.
func (e Event) Get(ctx context.Context, out *clip.Event, opts ...orm.QueryOption) error {
	return e.scope(ctx, opts...).First(out).Error
}

// Add implements clip.EventStorer.
func (e Event) Add(ctx context.Context, in *clip.Event) error {
	return e.db.WithContext(ctx).Create(in).Error
}

// Del implements clip.EventStorer.
func (e Event) Del(ctx context.Context, out *clip.Event, opts ...orm.QueryOption) error {
	return e.scope(ctx, opts...).Delete(out).Error
}

// Session implements clip.EventStorer.
func (e Event) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
