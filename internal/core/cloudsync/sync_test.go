package cloudsync_test

import (
	"context"
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gowvp/camclip/internal/core/cloudsync"
	"github.com/gowvp/camclip/internal/core/cloudsync/store/cloudsyncdb"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCore(t *testing.T) (cloudsync.Core, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return cloudsync.NewCore(cloudsyncdb.NewDB(db).AutoMigrate(true)), db
}

func record(t *testing.T, core cloudsync.Core, sourceID int64, name string, size int64) {
	t.Helper()
	_, err := core.RecordDownloadedFile(context.Background(), &cloudsync.RecordDownloadedFileInput{
		SourceID:         sourceID,
		CameraName:       "lobby",
		OriginalFilename: name,
		LocalFilePath:    "/data/downloads/" + name,
		FileSizeBytes:    size,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestRecomputeSyncStatusAggregates(t *testing.T) {
	core, _ := setupCore(t)
	ctx := context.Background()

	record(t, core, 87, "a.mp4", 1024000)
	record(t, core, 87, "b.mp4", 2048000)
	record(t, core, 87, "c.mp4", 1536000)
	// 其他来源的文件不得混入聚合
	record(t, core, 88, "other.mp4", 999999)

	st, err := core.RecomputeSyncStatus(ctx, 87, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.FilesDownloadedCount != 3 {
		t.Errorf("count = %d, want 3", st.FilesDownloadedCount)
	}
	wantMB := float64(1024000+2048000+1536000) / 1048576
	if math.Abs(st.TotalDownloadSizeMB-wantMB) > 1e-9 {
		t.Errorf("total_mb = %v, want %v", st.TotalDownloadSizeMB, wantMB)
	}
	if math.Abs(st.TotalDownloadSizeMB-4.39) > 0.01 {
		t.Errorf("total_mb = %v, want ≈4.39", st.TotalDownloadSizeMB)
	}
	if st.LastSyncStatus != cloudsync.SyncSuccess {
		t.Errorf("status = %s, want success", st.LastSyncStatus)
	}
}

func TestRecomputeSyncStatusIdempotent(t *testing.T) {
	core, _ := setupCore(t)
	ctx := context.Background()

	record(t, core, 1, "a.mp4", 500)
	record(t, core, 1, "b.mp4", 1500)

	first, err := core.RecomputeSyncStatus(ctx, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := core.RecomputeSyncStatus(ctx, 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	if first.FilesDownloadedCount != second.FilesDownloadedCount ||
		first.TotalDownloadSizeMB != second.TotalDownloadSizeMB ||
		first.LastSyncStatus != second.LastSyncStatus ||
		first.LastSyncMessage != second.LastSyncMessage {
		t.Errorf("recompute not idempotent: %+v vs %+v", first, second)
	}

	// 覆盖写：表中始终只有一行
	items, total, err := core.FindSyncStatuses(ctx, &cloudsync.FindSyncStatusInput{})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("sync_status rows = %d, want 1", total)
	}
}

func TestRecomputeSyncStatusZeroFiles(t *testing.T) {
	core, _ := setupCore(t)

	st, err := core.RecomputeSyncStatus(context.Background(), 42, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.FilesDownloadedCount != 0 || st.TotalDownloadSizeMB != 0 {
		t.Errorf("empty source: count=%d mb=%v, want zeros", st.FilesDownloadedCount, st.TotalDownloadSizeMB)
	}
	if st.LastSyncStatus != cloudsync.SyncSuccess {
		t.Errorf("status = %s, want success", st.LastSyncStatus)
	}
}

func TestRecomputeSyncStatusOverride(t *testing.T) {
	core, _ := setupCore(t)
	ctx := context.Background()

	// 零新文件的失败周期也要能上报状态
	st, err := core.RecomputeSyncStatus(ctx, 9, &cloudsync.StatusOverride{
		Status:  cloudsync.SyncFailed,
		Message: "camera unreachable",
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.LastSyncStatus != cloudsync.SyncFailed {
		t.Errorf("status = %s, want failed", st.LastSyncStatus)
	}
	if st.LastSyncMessage != "camera unreachable" {
		t.Errorf("message = %q", st.LastSyncMessage)
	}

	got, err := core.GetSyncStatus(ctx, 9)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastSyncStatus != cloudsync.SyncFailed || got.LastSyncMessage != "camera unreachable" {
		t.Errorf("dashboard read = %+v", got)
	}

	if _, err := core.RecomputeSyncStatus(ctx, 9, &cloudsync.StatusOverride{Status: "banana"}); err == nil {
		t.Error("invalid status must be rejected")
	}
}

func TestRecordDownloadedFileValidation(t *testing.T) {
	core, _ := setupCore(t)
	ctx := context.Background()

	if _, err := core.RecordDownloadedFile(ctx, &cloudsync.RecordDownloadedFileInput{
		SourceID: 1, FileSizeBytes: 10,
	}); err == nil {
		t.Error("empty filename must be rejected")
	}

	if _, err := core.RecordDownloadedFile(ctx, &cloudsync.RecordDownloadedFileInput{
		SourceID: 1, OriginalFilename: "a.mp4", FileSizeBytes: -1,
	}); err == nil {
		t.Error("negative size must be rejected")
	}
}

// 重算中途存储故障必须整体回滚，已有的聚合行不得被改写
func TestRecomputeSyncStatusFailureAppliesNothing(t *testing.T) {
	core, db := setupCore(t)
	ctx := context.Background()

	record(t, core, 7, "a.mp4", 2048)
	before, err := core.RecomputeSyncStatus(ctx, 7, nil)
	if err != nil {
		t.Fatal(err)
	}

	record(t, core, 7, "b.mp4", 4096)
	// 让事务内的聚合扫描失败
	if err := db.Migrator().DropTable("downloaded_files"); err != nil {
		t.Fatal(err)
	}

	if _, err := core.RecomputeSyncStatus(ctx, 7, nil); err == nil {
		t.Fatal("store failure must surface as error")
	}

	got, err := core.GetSyncStatus(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.FilesDownloadedCount != before.FilesDownloadedCount ||
		got.TotalDownloadSizeMB != before.TotalDownloadSizeMB ||
		got.LastSyncStatus != before.LastSyncStatus ||
		got.LastSyncMessage != before.LastSyncMessage {
		t.Errorf("failed recompute mutated sync_status: %+v vs %+v", got, before)
	}
}

// 同一文件重复登记会抬高计数与总量，本层不去重（上游调用方负责）
func TestRecordDownloadedFileNoDedup(t *testing.T) {
	core, _ := setupCore(t)
	ctx := context.Background()

	record(t, core, 5, "dup.mp4", 1000)
	record(t, core, 5, "dup.mp4", 1000)

	st, err := core.RecomputeSyncStatus(ctx, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.FilesDownloadedCount != 2 {
		t.Errorf("count = %d, want 2 (no dedup at this layer)", st.FilesDownloadedCount)
	}
}
