package clip

import (
	"github.com/ixugo/goddd/pkg/orm"
)

// 剪辑处理结果状态
const (
	StatusWritten = "written" // 剪辑已写出
	StatusSkipped = "skipped" // 时间窗口退化，跳过
	StatusFailed  = "failed"  // 外部裁剪进程失败
)

// Event 上游检测产生的事件记录，只进不改
type Event struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	StartSec  float64  `gorm:"column:start_sec" json:"start_sec"`         // 相对源视频的开始偏移（秒）
	EndSec    *float64 `gorm:"column:end_sec" json:"end_sec"`             // 结束偏移（秒），nil 表示未闭合事件
	VideoFile string   `gorm:"column:video_file" json:"video_file"`       // 源视频文件名（相对输入目录）
	CreatedAt orm.Time `gorm:"column:created_at;notnull" json:"created_at"`
}

func (*Event) TableName() string {
	return "events"
}

// IsClosed 事件是否已闭合，未闭合事件不可提取剪辑
func (e *Event) IsClosed() bool {
	return e.EndSec != nil
}

// Clip 一次提取的结果记录，三种状态都会留痕
type Clip struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	EventID   string   `gorm:"column:event_id;index" json:"event_id"`
	Path      string   `gorm:"column:path" json:"path"` // 输出文件完整路径，skipped/failed 时为空
	StartSec  float64  `gorm:"column:start_sec" json:"start_sec"`
	EndSec    float64  `gorm:"column:end_sec" json:"end_sec"`
	Duration  float64  `gorm:"column:duration" json:"duration"`
	Size      int64    `gorm:"column:size" json:"size"` // 文件大小（字节）
	Status    string   `gorm:"column:status;index" json:"status"`
	Reason    string   `gorm:"column:reason" json:"reason"` // skipped 原因或 failed 诊断信息
	CreatedAt orm.Time `gorm:"column:created_at;notnull" json:"created_at"`
}

func (*Clip) TableName() string {
	return "clips"
}

// Window 经过缓冲扩展与边界收敛后的剪辑时间窗口
type Window struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// ComputeWindow 计算事件的剪辑时间窗口
// start = max(0, ts-buffer)，end = min(te+buffer, videoLength)
// Duration <= 0 时调用方应跳过该事件，不得调用裁剪
func ComputeWindow(ts, te, buffer, videoLength float64) Window {
	start := ts - buffer
	if start < 0 {
		start = 0
	}
	end := te + buffer
	if end > videoLength {
		end = videoLength
	}
	return Window{
		Start:    start,
		End:      end,
		Duration: end - start,
	}
}
