package cloudsync

import (
	"github.com/ixugo/goddd/pkg/orm"
)

// 同步周期结果状态
const (
	SyncSuccess = "success"
	SyncPartial = "partial"
	SyncFailed  = "failed"
)

// 1 MB = 1048576 字节，聚合值存精确值，展示层再舍入
const bytesPerMB = 1 << 20

// DownloadedFile 云端摄像头下载完成的文件记录，只追加不修改
// 不做去重，(source_id, local_file_path) 重复登记属调用方问题
type DownloadedFile struct {
	ID                 int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceID           int64    `gorm:"column:source_id;index" json:"source_id"`
	CameraName         string   `gorm:"column:camera_name" json:"camera_name"`
	OriginalFilename   string   `gorm:"column:original_filename" json:"original_filename"`
	LocalFilePath      string   `gorm:"column:local_file_path" json:"local_file_path"`
	FileSizeBytes      int64    `gorm:"column:file_size_bytes" json:"file_size_bytes"`
	DownloadedAt       orm.Time `gorm:"column:downloaded_at" json:"downloaded_at"`
	RecordingStartedAt orm.Time `gorm:"column:recording_started_at" json:"recording_started_at"`
}

func (*DownloadedFile) TableName() string {
	return "downloaded_files"
}

// SyncStatus 每个来源一行的聚合状态，整行重算覆盖写
// 计数与字节总量始终从 downloaded_files 全量重算，不做增量，杜绝漂移
type SyncStatus struct {
	SourceID             int64    `gorm:"column:source_id;primaryKey" json:"source_id"`
	FilesDownloadedCount int64    `gorm:"column:files_downloaded_count" json:"files_downloaded_count"`
	TotalDownloadSizeMB  float64  `gorm:"column:total_download_size_mb" json:"total_download_size_mb"`
	LastSyncStatus       string   `gorm:"column:last_sync_status" json:"last_sync_status"`
	LastSyncMessage      string   `gorm:"column:last_sync_message" json:"last_sync_message"`
	UpdatedAt            orm.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (*SyncStatus) TableName() string {
	return "sync_status"
}

// validStatus 同步状态取值校验
func validStatus(s string) bool {
	switch s {
	case SyncSuccess, SyncPartial, SyncFailed:
		return true
	}
	return false
}
