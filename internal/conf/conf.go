package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration 支持在 toml 中以 "30s" / "5m" 形式配置时长
type Duration string

func (d Duration) Duration() time.Duration {
	v, _ := time.ParseDuration(string(d))
	return v
}

// Bootstrap 应用启动配置
type Bootstrap struct {
	BuildVersion string `toml:"-"`
	Debug        bool   `toml:"debug"`
	Server       Server `toml:"server"`
	Data         Data   `toml:"data"`
}

type Server struct {
	HTTP HTTP       `toml:"http"`
	Clip ServerClip `toml:"clip"`
}

type HTTP struct {
	Port  int   `toml:"port"`
	PProf PProf `toml:"pprof"`
}

type PProf struct {
	Enabled   bool     `toml:"enabled"`
	AccessIps []string `toml:"access_ips"`
}

// ServerClip 剪辑相关配置
type ServerClip struct {
	Disabled bool `toml:"disabled"` // 禁用剪辑清理协程
	// BufferSec 事件前后各扩展的安全缓冲时长（秒）
	// 属于部署级参数，由调用方传入提取组件，组件内不做默认值
	BufferSec  float64 `toml:"buffer_sec"`
	RetainDays int     `toml:"retain_days"` // 剪辑文件保留天数，<=0 表示不清理
}

type Data struct {
	Database Database `toml:"database"`
}

type Database struct {
	// Dsn 以 postgres:// 或 mysql: 开头时使用对应驱动，否则按 sqlite 文件处理
	Dsn             string   `toml:"dsn"`
	MaxIdleConns    int32    `toml:"max_idle_conns"`
	MaxOpenConns    int32    `toml:"max_open_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime"`
	SlowThreshold   Duration `toml:"slow_threshold"`
}

func defaultBootstrap() *Bootstrap {
	return &Bootstrap{
		Server: Server{
			HTTP: HTTP{Port: 8090},
			Clip: ServerClip{
				BufferSec:  5,
				RetainDays: 30,
			},
		},
		Data: Data{
			Database: Database{
				Dsn:             "camclip.db",
				MaxIdleConns:    10,
				MaxOpenConns:    50,
				ConnMaxLifetime: "6h",
				SlowThreshold:   "200ms",
			},
		},
	}
}

// SetupConfig 读取 toml 配置文件
// 文件不存在时写入默认配置，保证首次部署开箱即用
func SetupConfig(path string) (*Bootstrap, error) {
	bc := defaultBootstrap()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := writeDefault(path, bc); err != nil {
			return nil, err
		}
		return bc, nil
	}

	if err := toml.Unmarshal(data, bc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return bc, nil
}

func writeDefault(path string, bc *Bootstrap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	data, err := toml.Marshal(bc)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
