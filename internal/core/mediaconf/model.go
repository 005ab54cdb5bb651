package mediaconf

import (
	"path/filepath"

	"github.com/ixugo/goddd/pkg/orm"
)

// ProcessingConfig 部署级处理目录配置，单行记录
type ProcessingConfig struct {
	ID         int64    `gorm:"primaryKey" json:"id"`
	InputPath  string   `gorm:"column:input_path" json:"input_path"`
	OutputPath string   `gorm:"column:output_path" json:"output_path"`
	UpdatedAt  orm.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (*ProcessingConfig) TableName() string {
	return "processing_config"
}

// singletonID 配置表只有一行
const singletonID = 1

// ResolvedConfig 一次解析得到的目录视图，按调用生成，不做跨调用缓存
type ResolvedConfig struct {
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`
	LogDir    string `json:"log_dir"`
}

// InputPath 拼接输入目录下的文件路径，不检查文件是否存在
func (r ResolvedConfig) InputPath(name string) string {
	return filepath.Join(r.InputDir, name)
}

// OutputPath 拼接输出目录下的文件路径
func (r ResolvedConfig) OutputPath(name string) string {
	return filepath.Join(r.OutputDir, name)
}

// LogPath 拼接日志目录下的文件路径
func (r ResolvedConfig) LogPath(name string) string {
	return filepath.Join(r.LogDir, name)
}
