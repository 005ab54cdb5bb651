package cloudsync

import (
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
)

type RecordDownloadedFileInput struct {
	SourceID           int64    `json:"source_id" binding:"required"`
	CameraName         string   `json:"camera_name"`
	OriginalFilename   string   `json:"original_filename"`
	LocalFilePath      string   `json:"local_file_path"`
	FileSizeBytes      int64    `json:"file_size_bytes"`
	DownloadedAt       orm.Time `json:"downloaded_at"`
	RecordingStartedAt orm.Time `json:"recording_started_at"`
}

// StatusOverride 同步驱动方上报 partial/failed 周期时的状态覆盖
// 空字段保持默认值（success 与默认消息）
type StatusOverride struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type FindDownloadedFileInput struct {
	web.PagerFilter
	SourceID int64 `form:"source_id"`
}

type FindSyncStatusInput struct {
	web.PagerFilter
}
