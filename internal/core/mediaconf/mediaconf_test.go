package mediaconf

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

type fakeStore struct {
	row *ProcessingConfig
	err error
}

func (f *fakeStore) ProcessingConfig() ProcessingConfigStorer { return f }

func (f *fakeStore) Get(_ context.Context, out *ProcessingConfig, _ ...orm.QueryOption) error {
	if f.err != nil {
		return f.err
	}
	if f.row == nil {
		return gorm.ErrRecordNotFound
	}
	*out = *f.row
	return nil
}

func (f *fakeStore) Session(context.Context, ...func(*gorm.DB) error) error {
	return f.err
}

// 配置行缺失时回退部署根目录下的默认路径，不得报错
func TestGetProcessingConfigFallback(t *testing.T) {
	core := NewCore(&fakeStore{})

	cfg := core.GetProcessingConfig(context.Background())
	if !strings.HasSuffix(cfg.InputDir, filepath.Join("resources", "Inputvideo")) {
		t.Errorf("input dir = %q, want default Inputvideo", cfg.InputDir)
	}
	if !strings.HasSuffix(cfg.LogDir, filepath.Join("resources", "output_clips", "LOG")) {
		t.Errorf("log dir = %q, want default output_clips/LOG", cfg.LogDir)
	}
}

// 存储故障同样回退默认路径
func TestGetProcessingConfigStoreError(t *testing.T) {
	core := NewCore(&fakeStore{err: errors.New("connection refused")})

	cfg := core.GetProcessingConfig(context.Background())
	if cfg.InputDir == "" || cfg.LogDir == "" {
		t.Errorf("fallback config incomplete: %+v", cfg)
	}
}

func TestGetProcessingConfigStored(t *testing.T) {
	core := NewCore(&fakeStore{row: &ProcessingConfig{
		ID:         1,
		InputPath:  "/mnt/videos",
		OutputPath: "/mnt/clips",
	}})

	cfg := core.GetProcessingConfig(context.Background())
	if cfg.InputDir != "/mnt/videos" {
		t.Errorf("input dir = %q", cfg.InputDir)
	}
	if cfg.OutputDir != "/mnt/clips" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.LogDir != filepath.Join("/mnt/clips", "LOG") {
		t.Errorf("log dir = %q", cfg.LogDir)
	}
}

func TestResolvedConfigJoins(t *testing.T) {
	cfg := ResolvedConfig{InputDir: "/in", OutputDir: "/out", LogDir: "/out/LOG"}
	if got := cfg.InputPath("cam1.mp4"); got != filepath.Join("/in", "cam1.mp4") {
		t.Errorf("InputPath = %q", got)
	}
	if got := cfg.LogPath("run.log"); got != filepath.Join("/out/LOG", "run.log") {
		t.Errorf("LogPath = %q", got)
	}
}
