package clipdb

import (
	"github.com/gowvp/camclip/internal/core/clip"
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
		if err := d.db.AutoMigrate(&clip.Event{}, &clip.Clip{}); err != nil {
			panic(err)
		}
	}
	return d
}

func (d *DB) Event() clip.EventStorer {
	return Event{db: d.db}
}

func (d *DB) Clip() clip.ClipStorer {
	return Clip{db: d.db}
}
