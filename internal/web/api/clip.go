package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gowvp/camclip/internal/conf"
	"github.com/gowvp/camclip/internal/core/clip"
	"github.com/gowvp/camclip/internal/core/mediaconf"
	"github.com/gowvp/camclip/pkg/ffclip"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
)

// ClipAPI 为 http 提供业务方法
type ClipAPI struct {
	clipCore      clip.Core
	mediaConfCore mediaconf.Core
	conf          *conf.Bootstrap
}

func NewClipAPI(core clip.Core, mc mediaconf.Core, conf *conf.Bootstrap) ClipAPI {
	return ClipAPI{clipCore: core, mediaConfCore: mc, conf: conf}
}

func registerClip(g gin.IRouter, api ClipAPI, handler ...gin.HandlerFunc) {
	{
		group := g.Group("/events", handler...)
		group.POST("", web.WrapH(api.addEvent))
		group.GET("", web.WrapH(api.findEvents))
		group.GET("/:id", web.WrapH(api.getEvent))
		group.DELETE("/:id", web.WrapH(api.delEvent))
		group.POST("/:id/clips", web.WrapH(api.extractClip))
	}
	{
		group := g.Group("/clips", handler...)
		group.GET("", web.WrapH(api.findClips))
		group.GET("/:id", web.WrapH(api.getClip))
		group.GET("/:id/download", api.downloadClip)
	}
}

func (a ClipAPI) addEvent(c *gin.Context, in *clip.AddEventInput) (*clip.Event, error) {
	return a.clipCore.AddEvent(c.Request.Context(), in)
}

// findEvents 分页查询事件列表
func (a ClipAPI) findEvents(c *gin.Context, in *clip.FindEventInput) (any, error) {
	items, total, err := a.clipCore.FindEvents(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}

func (a ClipAPI) getEvent(c *gin.Context, _ *struct{}) (*clip.Event, error) {
	return a.clipCore.GetEvent(c.Request.Context(), c.Param("id"))
}

func (a ClipAPI) delEvent(c *gin.Context, _ *struct{}) (*clip.Event, error) {
	return a.clipCore.DelEvent(c.Request.Context(), c.Param("id"))
}

type extractClipInput struct {
	// BufferSec 不传时使用服务配置的缓冲时长
	BufferSec *float64 `json:"buffer_sec"`
}

// extractClip 按事件时间窗提取剪辑
// 源视频时长在此处探测，目录解析走 mediaconf，核心组件只做纯提取
func (a ClipAPI) extractClip(c *gin.Context, in *extractClipInput) (*clip.ExtractResult, error) {
	ctx := c.Request.Context()
	ev, err := a.clipCore.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return nil, err
	}

	cfg := a.mediaConfCore.GetProcessingConfig(ctx)
	input := cfg.InputPath(ev.VideoFile)
	length, err := ffclip.Duration(ctx, input)
	if err != nil {
		return nil, reason.ErrBadRequest.Withf("探测视频时长失败: %s", err)
	}

	buffer := a.conf.Server.Clip.BufferSec
	if in.BufferSec != nil {
		buffer = *in.BufferSec
	}

	output := cfg.OutputPath(fmt.Sprintf("%s_%s.mp4", ev.ID, uuid.NewString()))
	return a.clipCore.ExtractClip(ctx, &clip.ExtractClipInput{
		Event:       ev,
		InputPath:   input,
		VideoLength: length,
		BufferSec:   buffer,
		OutputPath:  output,
	})
}

// findClips 分页查询剪辑列表
func (a ClipAPI) findClips(c *gin.Context, in *clip.FindClipInput) (any, error) {
	items, total, err := a.clipCore.FindClips(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}

func (a ClipAPI) getClip(c *gin.Context, _ *struct{}) (*clip.Clip, error) {
	return a.clipCore.GetClip(c.Request.Context(), c.Param("id"))
}

// downloadClip 下载剪辑文件
func (a ClipAPI) downloadClip(c *gin.Context) {
	cl, err := a.clipCore.GetClip(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	if cl.Status != clip.StatusWritten {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": "clip has no file"})
		return
	}

	if _, err := os.Stat(cl.Path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"code": 1, "msg": "clip file not found"})
		return
	}

	// 设置下载文件名
	c.Header("Content-Disposition", attachmentHeader(filepath.Base(cl.Path)))
	c.File(cl.Path)
}

// attachmentHeader 文件名必须带引号，空格或分号会破坏裸值头部
func attachmentHeader(name string) string {
	return fmt.Sprintf("attachment; filename=%q", name)
}
