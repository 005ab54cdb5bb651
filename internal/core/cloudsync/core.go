package cloudsync

import (
	"context"

	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

// Storer data persistence
type Storer interface {
	DownloadedFile() DownloadedFileStorer
	SyncStatus() SyncStatusStorer
}

// DownloadedFileStorer Instantiation interface
type DownloadedFileStorer interface {
	Find(context.Context, *[]*DownloadedFile, orm.Pager, ...orm.QueryOption) (int64, error)
	Add(context.Context, *DownloadedFile) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

type SyncStatusStorer interface {
	Find(context.Context, *[]*SyncStatus, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *SyncStatus, ...orm.QueryOption) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

// Core business domain
type Core struct {
	store Storer
}

// NewCore create business domain
func NewCore(store Storer) Core {
	return Core{store: store}
}
