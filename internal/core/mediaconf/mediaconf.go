package mediaconf

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/system"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storer data persistence
type Storer interface {
	ProcessingConfig() ProcessingConfigStorer
}

type ProcessingConfigStorer interface {
	Get(context.Context, *ProcessingConfig, ...orm.QueryOption) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

// Core business domain
type Core struct {
	store Storer
}

// NewCore create business domain
// 每个进程构造一次，持有注入的存储句柄；解析结果按调用生成，避免模块级全局状态
func NewCore(store Storer) Core {
	return Core{store: store}
}

type SetProcessingConfigInput struct {
	InputPath  string `json:"input_path" binding:"required"`
	OutputPath string `json:"output_path" binding:"required"`
}

// defaultConfig 部署根目录下的兜底路径，首次部署尚无配置行时使用
func defaultConfig() ResolvedConfig {
	base := system.Getwd()
	outputDir := filepath.Join(base, "resources", "output_clips")
	return ResolvedConfig{
		InputDir:  filepath.Join(base, "resources", "Inputvideo"),
		OutputDir: outputDir,
		LogDir:    filepath.Join(outputDir, "LOG"),
	}
}

// GetProcessingConfig 解析处理目录配置
// 配置行缺失或存储故障时回退默认路径，不返回错误；
// 无配置是首次部署的正常状态，不是异常
func (c Core) GetProcessingConfig(ctx context.Context) ResolvedConfig {
	var row ProcessingConfig
	if err := c.store.ProcessingConfig().Get(ctx, &row, orm.Where("id=?", singletonID)); err != nil {
		slog.DebugContext(ctx, "processing config fallback to defaults", "err", err)
		return defaultConfig()
	}
	if row.InputPath == "" || row.OutputPath == "" {
		return defaultConfig()
	}
	return ResolvedConfig{
		InputDir:  row.InputPath,
		OutputDir: row.OutputPath,
		LogDir:    filepath.Join(row.OutputPath, "LOG"),
	}
}

// SetProcessingConfig 覆盖写单行配置
func (c Core) SetProcessingConfig(ctx context.Context, in *SetProcessingConfigInput) (*ProcessingConfig, error) {
	out := ProcessingConfig{
		ID:         singletonID,
		InputPath:  in.InputPath,
		OutputPath: in.OutputPath,
		UpdatedAt:  orm.Now(),
	}
	err := c.store.ProcessingConfig().Session(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&out).Error
	})
	if err != nil {
		return nil, reason.ErrDB.Withf(`Set err[%s]`, err.Error())
	}
	return &out, nil
}
