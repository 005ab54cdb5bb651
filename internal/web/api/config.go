package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gowvp/camclip/internal/core/mediaconf"
	"github.com/ixugo/goddd/pkg/web"
)

// ConfigAPI 处理目录配置
type ConfigAPI struct {
	mediaConfCore mediaconf.Core
}

func NewConfigAPI(core mediaconf.Core) ConfigAPI {
	return ConfigAPI{mediaConfCore: core}
}

func registerConfig(g gin.IRouter, api ConfigAPI, handler ...gin.HandlerFunc) {
	group := g.Group("/config", handler...)
	group.GET("/processing", web.WrapH(api.getProcessing))
	group.PUT("/processing", web.WrapH(api.setProcessing))
}

// getProcessing 返回解析后的目录，配置缺失时为部署根目录下的默认路径
func (a ConfigAPI) getProcessing(c *gin.Context, _ *struct{}) (mediaconf.ResolvedConfig, error) {
	return a.mediaConfCore.GetProcessingConfig(c.Request.Context()), nil
}

func (a ConfigAPI) setProcessing(c *gin.Context, in *mediaconf.SetProcessingConfigInput) (*mediaconf.ProcessingConfig, error) {
	return a.mediaConfCore.SetProcessingConfig(c.Request.Context(), in)
}
