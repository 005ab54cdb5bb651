package cloudsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordDownloadedFile 登记一条下载完成的文件
// 只校验文件名非空与大小非负，不更新 sync_status；
// 状态重算是独立步骤，批量登记后调用方发起一次 RecomputeSyncStatus 即可
func (c Core) RecordDownloadedFile(ctx context.Context, in *RecordDownloadedFileInput) (*DownloadedFile, error) {
	if in.OriginalFilename == "" {
		return nil, reason.ErrBadRequest.Withf("original_filename is required")
	}
	if in.FileSizeBytes < 0 {
		return nil, reason.ErrBadRequest.Withf("file_size_bytes[%d] must be >= 0", in.FileSizeBytes)
	}

	var out DownloadedFile
	if err := copier.Copy(&out, in); err != nil {
		slog.ErrorContext(ctx, "Copy", "err", err)
	}
	if out.DownloadedAt.Time.IsZero() {
		out.DownloadedAt = orm.Now()
	}

	if err := c.store.DownloadedFile().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add source[%d] file[%s] err[%s]`, in.SourceID, in.OriginalFilename, err.Error())
	}
	return &out, nil
}

// RecomputeSyncStatus 全量重算指定来源的聚合状态并覆盖写入
// 扫描与写入在同一事务内完成，失败时观察不到半成品状态；
// 与并发登记之间不保证线性一致，下一个同步周期自然补齐
func (c Core) RecomputeSyncStatus(ctx context.Context, sourceID int64, override *StatusOverride) (*SyncStatus, error) {
	if override != nil && override.Status != "" && !validStatus(override.Status) {
		return nil, reason.ErrBadRequest.Withf("invalid sync status %q", override.Status)
	}

	var out SyncStatus
	err := c.store.SyncStatus().Session(ctx, func(tx *gorm.DB) error {
		var agg struct {
			Cnt   int64 `gorm:"column:cnt"`
			Total int64 `gorm:"column:total"`
		}
		if err := tx.Model(&DownloadedFile{}).
			Select("COUNT(*) AS cnt, COALESCE(SUM(file_size_bytes), 0) AS total").
			Where("source_id = ?", sourceID).
			Scan(&agg).Error; err != nil {
			return err
		}

		out = SyncStatus{
			SourceID:             sourceID,
			FilesDownloadedCount: agg.Cnt,
			TotalDownloadSizeMB:  float64(agg.Total) / bytesPerMB,
			LastSyncStatus:       SyncSuccess,
			LastSyncMessage:      fmt.Sprintf("downloaded %d files", agg.Cnt),
			UpdatedAt:            orm.Now(),
		}
		if override != nil {
			if override.Status != "" {
				out.LastSyncStatus = override.Status
			}
			if override.Message != "" {
				out.LastSyncMessage = override.Message
			}
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_id"}},
			UpdateAll: true,
		}).Create(&out).Error
	})
	if err != nil {
		return nil, reason.ErrDB.Withf(`Recompute source[%d] err[%s]`, sourceID, err.Error())
	}

	slog.InfoContext(ctx, "sync status recomputed",
		"source_id", sourceID,
		"files", out.FilesDownloadedCount,
		"total_mb", out.TotalDownloadSizeMB,
		"status", out.LastSyncStatus,
	)
	return &out, nil
}

// GetSyncStatus Query a single object
func (c Core) GetSyncStatus(ctx context.Context, sourceID int64) (*SyncStatus, error) {
	var out SyncStatus
	if err := c.store.SyncStatus().Get(ctx, &out, orm.Where("source_id=?", sourceID)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get source[%d] err[%s]`, sourceID, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Get source[%d] err[%s]`, sourceID, err.Error())
	}
	return &out, nil
}

// FindSyncStatuses 分页查询各来源聚合状态，供看板消费
func (c Core) FindSyncStatuses(ctx context.Context, in *FindSyncStatusInput) ([]*SyncStatus, int64, error) {
	query := orm.NewQuery(1).OrderBy("source_id ASC")

	items := make([]*SyncStatus, 0, in.Limit())
	total, err := c.store.SyncStatus().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// FindDownloadedFiles 分页查询下载记录
func (c Core) FindDownloadedFiles(ctx context.Context, in *FindDownloadedFileInput) ([]*DownloadedFile, int64, error) {
	query := orm.NewQuery(2).OrderBy("downloaded_at DESC")
	if in.SourceID > 0 {
		query.Where("source_id = ?", in.SourceID)
	}

	items := make([]*DownloadedFile, 0, in.Limit())
	total, err := c.store.DownloadedFile().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}
