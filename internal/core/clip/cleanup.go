package clip

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// StartCleanupWorker 启动定时清理协程
// 程序启动时执行一次清理，随后每 60 分钟执行一次
// 输出目录每轮重新解析，运行期重新指向配置后下一轮即生效
func (c Core) StartCleanupWorker(resolveOutputDir func() string) {
	if c.conf == nil || c.conf.Disabled || c.conf.RetainDays <= 0 {
		slog.Info("clip cleanup disabled")
		return
	}

	slog.Info("clip cleanup worker started", "retain_days", c.conf.RetainDays)

	c.cleanupExpiredClips(resolveOutputDir)

	ticker := time.NewTicker(60 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanupExpiredClips(resolveOutputDir)
	}
}

// cleanupExpiredClips 清理超过保留天数的剪辑，先删文件再删记录
func (c Core) cleanupExpiredClips(resolveOutputDir func() string) {
	ctx := context.Background()
	cutoffTime := time.Now().AddDate(0, 0, -c.conf.RetainDays)

	batchSize := 100
	var totalDeleted, filesDeleted, failedFiles int
	var freedBytes int64

	for {
		var clips []*Clip
		pager := web.PagerFilter{Page: 1, Size: batchSize}
		_, err := c.store.Clip().Find(ctx, &clips, &pager,
			orm.Where("created_at < ?", orm.Time{Time: cutoffTime}),
		)
		if err != nil || len(clips) == 0 {
			break
		}

		var deleteIDs []string
		for _, cl := range clips {
			if cl.Path != "" {
				if err := os.Remove(cl.Path); err != nil {
					if !os.IsNotExist(err) {
						failedFiles++
					}
				} else {
					filesDeleted++
					freedBytes += cl.Size
				}
			}
			deleteIDs = append(deleteIDs, cl.ID)
		}

		if len(deleteIDs) > 0 {
			err = c.store.Clip().Session(ctx, func(tx *gorm.DB) error {
				return tx.Where("id IN ?", deleteIDs).Delete(&Clip{}).Error
			})
			if err != nil {
				slog.Warn("failed to batch delete clips", "count", len(deleteIDs), "err", err)
				break
			}
			totalDeleted += len(deleteIDs)
		}
	}

	if outputDir := resolveOutputDir(); outputDir != "" {
		cleanupEmptyDirs(outputDir)
	}

	if totalDeleted > 0 || failedFiles > 0 {
		slog.Info("clip cleanup completed",
			"retain_days", c.conf.RetainDays,
			"cutoff_time", cutoffTime.Format(time.DateTime),
			"clips_deleted", totalDeleted,
			"files_deleted", filesDeleted,
			"failed_files", failedFiles,
			"freed_bytes", freedBytes,
		)
	}
}

// cleanupEmptyDirs 递归删除空目录
func cleanupEmptyDirs(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			subDir := filepath.Join(dir, entry.Name())
			cleanupEmptyDirs(subDir)

			subEntries, err := os.ReadDir(subDir)
			if err == nil && len(subEntries) == 0 {
				_ = os.Remove(subDir)
			}
		}
	}
}
