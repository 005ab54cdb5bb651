package clip

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gowvp/camclip/internal/core/bz"
	"github.com/gowvp/camclip/pkg/ffclip"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
)

// ExtractClip 为一条已闭合事件提取剪辑
// 窗口退化返回 skipped，外部裁剪失败返回 failed，两者都不是 error；
// 只有调用方错误（未闭合事件、非法参数）和存储故障才返回 error。
// 组件内不做重试，重试策略属于外部调度器
func (c Core) ExtractClip(ctx context.Context, in *ExtractClipInput) (*ExtractResult, error) {
	if in.Event == nil {
		return nil, reason.ErrBadRequest.Withf("event is required")
	}
	if !in.Event.IsClosed() {
		return nil, reason.ErrBadRequest.Withf("event[%s] is open, end_sec is required", in.Event.ID)
	}
	if in.VideoLength <= 0 {
		return nil, reason.ErrBadRequest.Withf("video_length[%v] must be > 0", in.VideoLength)
	}
	if in.BufferSec < 0 {
		return nil, reason.ErrBadRequest.Withf("buffer[%v] must be >= 0", in.BufferSec)
	}
	if in.InputPath == "" || in.OutputPath == "" {
		return nil, reason.ErrBadRequest.Withf("input_path and output_path are required")
	}
	if c.trimmer == nil {
		return nil, reason.ErrBadRequest.Withf("trimmer is not configured")
	}

	w := ComputeWindow(in.Event.StartSec, *in.Event.EndSec, in.BufferSec, in.VideoLength)

	if w.Duration <= 0 {
		res := &ExtractResult{
			Status:  StatusSkipped,
			EventID: in.Event.ID,
			Window:  w,
			Reason:  fmt.Sprintf("degenerate window: duration %.3f <= 0 (ts=%.3f te=%.3f buffer=%.3f video_length=%.3f)", w.Duration, in.Event.StartSec, *in.Event.EndSec, in.BufferSec, in.VideoLength),
		}
		slog.InfoContext(ctx, "clip skipped", "event_id", in.Event.ID, "reason", res.Reason)
		return c.saveClip(ctx, in, res)
	}

	err := c.trimmer.Trim(ctx, ffclip.TrimSpec{
		Input:       in.InputPath,
		Output:      in.OutputPath,
		StartSec:    w.Start,
		DurationSec: w.Duration,
	})
	if err != nil {
		// 失败的输出文件不可信，调用方重试前应先删除
		res := &ExtractResult{
			Status:  StatusFailed,
			EventID: in.Event.ID,
			Window:  w,
			Reason:  err.Error(),
		}
		slog.ErrorContext(ctx, "clip trim failed", "event_id", in.Event.ID, "video", in.InputPath, "err", err)
		return c.saveClip(ctx, in, res)
	}

	res := &ExtractResult{
		Status:  StatusWritten,
		EventID: in.Event.ID,
		Window:  w,
		Path:    in.OutputPath,
	}
	if info, err := os.Stat(in.OutputPath); err == nil {
		res.Size = info.Size()
	}
	slog.InfoContext(ctx, "clip written",
		"event_id", in.Event.ID,
		"path", in.OutputPath,
		"start", w.Start,
		"duration", w.Duration,
		"size", res.Size,
	)
	return c.saveClip(ctx, in, res)
}

// saveClip 每次提取的三种结局都落库留痕
func (c Core) saveClip(ctx context.Context, in *ExtractClipInput, res *ExtractResult) (*ExtractResult, error) {
	record := Clip{
		ID:        c.uni.UniqueID(bz.IDPrefixClip),
		EventID:   res.EventID,
		Path:      res.Path,
		StartSec:  res.Window.Start,
		EndSec:    res.Window.End,
		Duration:  res.Window.Duration,
		Size:      res.Size,
		Status:    res.Status,
		Reason:    res.Reason,
		CreatedAt: orm.Now(),
	}
	if err := c.store.Clip().Add(ctx, &record); err != nil {
		return nil, reason.ErrDB.Withf(`Add clip event[%s] err[%s]`, in.Event.ID, err.Error())
	}
	res.ClipID = record.ID
	return res, nil
}

// GetClip Query a single object
func (c Core) GetClip(ctx context.Context, id string) (*Clip, error) {
	var out Clip
	if err := c.store.Clip().Get(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get id[%v] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Get id[%v] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// FindClips 分页查询剪辑记录，支持按事件与状态筛选
func (c Core) FindClips(ctx context.Context, in *FindClipInput) ([]*Clip, int64, error) {
	query := orm.NewQuery(2).OrderBy("created_at DESC")
	if in.EventID != "" {
		query.Where("event_id = ?", in.EventID)
	}
	if in.Status != "" {
		query.Where("status = ?", in.Status)
	}

	items := make([]*Clip, 0, in.Limit())
	total, err := c.store.Clip().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}
