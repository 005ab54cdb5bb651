package clip

import (
	"github.com/ixugo/goddd/pkg/web"
)

type AddEventInput struct {
	StartSec  float64  `json:"start_sec"`
	EndSec    *float64 `json:"end_sec"`
	VideoFile string   `json:"video_file" binding:"required"`
}

type FindEventInput struct {
	web.PagerFilter
	VideoFile string `form:"video_file"`
}

type FindClipInput struct {
	web.PagerFilter
	EventID string `form:"event_id"`
	Status  string `form:"status"`
}

// ExtractClipInput 单次提取的输入
// VideoLength 由调用方预先探测（本组件不读取媒体文件元信息）
// BufferSec 为部署级参数，由调用方传入，组件内不设默认值
type ExtractClipInput struct {
	Event       *Event
	InputPath   string // 源视频完整路径，由调用方解析
	VideoLength float64
	BufferSec   float64
	OutputPath  string // 输出剪辑完整路径
}

// ExtractResult 提取结果，written/skipped/failed 三种状态之一
// skipped 与 failed 都不是异常，调用方按 Status 分支处理
type ExtractResult struct {
	Status  string `json:"status"`
	ClipID  string `json:"clip_id"`
	EventID string `json:"event_id"`
	Window  Window `json:"window"`
	Path    string `json:"path,omitempty"`
	Size    int64  `json:"size,omitempty"`
	Reason  string `json:"reason,omitempty"` // skipped 原因或 failed 诊断
}
