package clipdb

import (
	"context"

	"github.com/gowvp/camclip/internal/core/clip"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ clip.ClipStorer = Clip{}

type Clip struct {
	db *gorm.DB
}

func (c Clip) scope(ctx context.Context, opts ...orm.QueryOption) *gorm.DB {
	tx := c.db.WithContext(ctx)
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

// Find implements clip.ClipStorer.
func (c Clip) Find(ctx context.Context, items *[]*clip.Clip, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	tx := c.scope(ctx, opts...).Model(&clip.Clip{})
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

// Get implements clip.ClipStorer.
func (c Clip) Get(ctx context.Context, out *clip.Clip, opts ...orm.QueryOption) error {
	return c.scope(ctx, opts...).First(out).Error
}

// Add implements clip.ClipStorer.
func (c Clip) Add(ctx context.Context, in *clip.Clip) error {
	return c.db.WithContext(ctx).Create(in).Error
}

// Del implements clip.ClipStorer.
func (c Clip) Del(ctx context.Context, out *clip.Clip, opts ...orm.QueryOption) error {
	return c.scope(ctx, opts...).Delete(out).Error
}

// Session implements clip.ClipStorer.
func (c Clip) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
