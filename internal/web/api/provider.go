package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/gowvp/camclip/internal/conf"
	"github.com/gowvp/camclip/internal/core/clip"
	"github.com/gowvp/camclip/internal/core/clip/store/clipdb"
	"github.com/gowvp/camclip/internal/core/cloudsync"
	"github.com/gowvp/camclip/internal/core/cloudsync/store/cloudsyncdb"
	"github.com/gowvp/camclip/internal/core/mediaconf"
	"github.com/gowvp/camclip/internal/core/mediaconf/store/mediaconfdb"
	"github.com/gowvp/camclip/pkg/ffclip"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/domain/uniqueid/store/uniqueiddb"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Usecase), "*"),
	NewHTTPHandler,
	NewUniqueID,
	NewMediaConfStore, NewMediaConfCore, NewConfigAPI,
	NewClipStore, NewClipCore, NewClipAPI,
	NewCloudSyncStore, NewCloudSyncCore, NewCloudSyncAPI,
)

type Usecase struct {
	Conf *conf.Bootstrap
	DB   *gorm.DB

	UniqueID     uniqueid.Core
	ClipAPI      ClipAPI
	CloudSyncAPI CloudSyncAPI
	ConfigAPI    ConfigAPI
}

// NewHTTPHandler 生成Gin框架路由内容
func NewHTTPHandler(uc *Usecase) http.Handler {
	cfg := uc.Conf
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	g := gin.New()
	g.NoRoute(func(c *gin.Context) {
		c.JSON(404, "来到了无人的荒漠")
	})
	// 如果启用了 Pprof，设置 Pprof 监控
	if cfg.Server.HTTP.PProf.Enabled {
		web.SetupPProf(g, &cfg.Server.HTTP.PProf.AccessIps)
	}

	setupRouter(g, uc)
	return g
}

// NewUniqueID 唯一 id 生成器
func NewUniqueID(db *gorm.DB) uniqueid.Core {
	return uniqueid.NewCore(uniqueiddb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()), 5)
}

func NewMediaConfStore(db *gorm.DB) mediaconf.Storer {
	return mediaconfdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate())
}

func NewMediaConfCore(store mediaconf.Storer) mediaconf.Core {
	return mediaconf.NewCore(store)
}

func NewClipStore(db *gorm.DB) clip.Storer {
	return clipdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate())
}

// NewClipCore 创建剪辑提取核心服务
// 清理协程随服务启动，输出目录每轮走 mediaconf 重新解析
func NewClipCore(store clip.Storer, uni uniqueid.Core, cfg *conf.Bootstrap, mc mediaconf.Core) clip.Core {
	core := clip.NewCore(store, uni,
		clip.WithTrimmer(ffclip.NewTrimmer()),
		clip.WithConfig(&cfg.Server.Clip),
	)

	// 启动清理协程
	go core.StartCleanupWorker(func() string {
		return mc.GetProcessingConfig(context.Background()).OutputDir
	})

	return core
}

func NewCloudSyncStore(db *gorm.DB) cloudsync.Storer {
	return cloudsyncdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate())
}

func NewCloudSyncCore(store cloudsync.Storer) cloudsync.Core {
	return cloudsync.NewCore(store)
}
