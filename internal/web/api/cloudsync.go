package api

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gowvp/camclip/internal/core/cloudsync"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
)

// CloudSyncAPI 云端下载同步上报与展示
type CloudSyncAPI struct {
	syncCore cloudsync.Core
}

func NewCloudSyncAPI(core cloudsync.Core) CloudSyncAPI {
	return CloudSyncAPI{syncCore: core}
}

func registerCloudSync(g gin.IRouter, api CloudSyncAPI, handler ...gin.HandlerFunc) {
	group := g.Group("/cloud", handler...)
	group.POST("/files", web.WrapH(api.recordFile))
	group.GET("/files", web.WrapH(api.findFiles))
	group.POST("/sources/:id/sync", web.WrapH(api.recomputeStatus))
	group.GET("/sources/:id/sync", web.WrapH(api.getStatus))
	group.GET("/sync", web.WrapH(api.findStatuses))
}

// recordFile 下载器完成一个文件后上报
func (a CloudSyncAPI) recordFile(c *gin.Context, in *cloudsync.RecordDownloadedFileInput) (*cloudsync.DownloadedFile, error) {
	return a.syncCore.RecordDownloadedFile(c.Request.Context(), in)
}

// findFiles 分页查询下载记录
func (a CloudSyncAPI) findFiles(c *gin.Context, in *cloudsync.FindDownloadedFileInput) (any, error) {
	items, total, err := a.syncCore.FindDownloadedFiles(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}

// recomputeStatus 同步周期结束后重算指定源的汇总状态
// body 可携带 status/message 覆盖默认的 success 结论
func (a CloudSyncAPI) recomputeStatus(c *gin.Context, in *cloudsync.StatusOverride) (*syncStatusView, error) {
	sourceID, err := parseSourceID(c)
	if err != nil {
		return nil, err
	}

	var override *cloudsync.StatusOverride
	if in.Status != "" || in.Message != "" {
		override = in
	}
	out, err := a.syncCore.RecomputeSyncStatus(c.Request.Context(), sourceID, override)
	if err != nil {
		return nil, err
	}
	return newSyncStatusView(out), nil
}

func (a CloudSyncAPI) getStatus(c *gin.Context, _ *struct{}) (*syncStatusView, error) {
	sourceID, err := parseSourceID(c)
	if err != nil {
		return nil, err
	}
	out, err := a.syncCore.GetSyncStatus(c.Request.Context(), sourceID)
	if err != nil {
		return nil, err
	}
	return newSyncStatusView(out), nil
}

// findStatuses 所有源的同步状态，供看板展示
func (a CloudSyncAPI) findStatuses(c *gin.Context, in *cloudsync.FindSyncStatusInput) (any, error) {
	items, total, err := a.syncCore.FindSyncStatuses(c.Request.Context(), in)
	views := make([]*syncStatusView, 0, len(items))
	for _, item := range items {
		views = append(views, newSyncStatusView(item))
	}
	return gin.H{"items": views, "total": total}, err
}

func parseSourceID(c *gin.Context) (int64, error) {
	sourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, reason.ErrBadRequest.Withf("invalid source id")
	}
	return sourceID, nil
}

// syncStatusView 展示层保留两位小数，存储值不动
type syncStatusView struct {
	cloudsync.SyncStatus
	TotalDownloadSizeMB float64 `json:"total_download_size_mb"`
}

func newSyncStatusView(s *cloudsync.SyncStatus) *syncStatusView {
	return &syncStatusView{
		SyncStatus:          *s,
		TotalDownloadSizeMB: math.Round(s.TotalDownloadSizeMB*100) / 100,
	}
}
