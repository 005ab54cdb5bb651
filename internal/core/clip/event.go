package clip

import (
	"context"
	"log/slog"

	"github.com/gowvp/camclip/internal/core/bz"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/jinzhu/copier"
)

// AddEvent 登记一条上游事件
// 不校验 ts/te 先后关系，退化窗口在提取阶段按 skipped 处理
func (c Core) AddEvent(ctx context.Context, in *AddEventInput) (*Event, error) {
	if in.StartSec < 0 {
		return nil, reason.ErrBadRequest.Withf("start_sec must be >= 0")
	}
	if in.VideoFile == "" {
		return nil, reason.ErrBadRequest.Withf("video_file is required")
	}

	var out Event
	if err := copier.Copy(&out, in); err != nil {
		slog.ErrorContext(ctx, "Copy", "err", err)
	}
	out.ID = c.uni.UniqueID(bz.IDPrefixEvent)
	out.CreatedAt = orm.Now()

	if err := c.store.Event().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
	}
	return &out, nil
}

// GetEvent Query a single object
func (c Core) GetEvent(ctx context.Context, id string) (*Event, error) {
	var out Event
	if err := c.store.Event().Get(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get id[%v] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Get id[%v] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// FindEvents 分页查询事件列表，支持按源视频文件筛选
func (c Core) FindEvents(ctx context.Context, in *FindEventInput) ([]*Event, int64, error) {
	query := orm.NewQuery(2).OrderBy("created_at DESC")
	if in.VideoFile != "" {
		query.Where("video_file = ?", in.VideoFile)
	}

	items := make([]*Event, 0, in.Limit())
	total, err := c.store.Event().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// DelEvent Delete object
func (c Core) DelEvent(ctx context.Context, id string) (*Event, error) {
	var out Event
	if err := c.store.Event().Del(ctx, &out, orm.Where("id=?", id)); err != nil {
		return nil, reason.ErrDB.Withf(`Del id[%v] err[%s]`, id, err.Error())
	}
	return &out, nil
}
