package clip

import (
	"context"

	"github.com/gowvp/camclip/internal/conf"
	"github.com/gowvp/camclip/pkg/ffclip"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

// Storer data persistence
type Storer interface {
	Event() EventStorer
	Clip() ClipStorer
}

// EventStorer Instantiation interface
type EventStorer interface {
	Find(context.Context, *[]*Event, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Event, ...orm.QueryOption) error
	Add(context.Context, *Event) error
	Del(context.Context, *Event, ...orm.QueryOption) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

type ClipStorer interface {
	Find(context.Context, *[]*Clip, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Clip, ...orm.QueryOption) error
	Add(context.Context, *Clip) error
	Del(context.Context, *Clip, ...orm.QueryOption) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

// Trimmer 外部无损裁剪，解耦提取领域与 ffmpeg 进程调用
type Trimmer interface {
	Trim(ctx context.Context, spec ffclip.TrimSpec) error
}

// IDGenerator 业务主键生成器，由 goddd uniqueid 领域提供实现
type IDGenerator interface {
	UniqueID(prefix string) string
}

// Core business domain
type Core struct {
	store   Storer
	uni     IDGenerator
	trimmer Trimmer
	conf    *conf.ServerClip
}

type Option func(*Core)

// WithTrimmer 注入外部裁剪实现
func WithTrimmer(t Trimmer) Option {
	return func(c *Core) {
		c.trimmer = t
	}
}

// WithConfig 注入剪辑配置
func WithConfig(cfg *conf.ServerClip) Option {
	return func(c *Core) {
		c.conf = cfg
	}
}

// NewCore create business domain
func NewCore(store Storer, uni IDGenerator, opts ...Option) Core {
	c := Core{store: store, uni: uni}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
