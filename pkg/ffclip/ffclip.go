package ffclip

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

type (
	// TrimSpec 一次无损裁剪任务的参数
	TrimSpec struct {
		Input       string  // 源视频完整路径
		Output      string  // 输出剪辑完整路径
		StartSec    float64 // 起始偏移（秒）
		DurationSec float64 // 裁剪时长（秒）
	}

	// Trimmer 调用 ffmpeg 执行流复制裁剪
	Trimmer struct {
		bin string
	}

	// ToolError ffmpeg 非零退出时的诊断信息
	// 携带源文件路径与 stderr 输出，调用方据此记录日志或上报
	ToolError struct {
		Input  string
		Stderr string
		Err    error
	}
)

func (e *ToolError) Error() string {
	return fmt.Sprintf("ffmpeg trim %q: %v: %s", e.Input, e.Err, strings.TrimSpace(e.Stderr))
}

func (e *ToolError) Unwrap() error { return e.Err }

func NewTrimmer() *Trimmer {
	return &Trimmer{bin: "ffmpeg"}
}

// buildTrimArgs 组装 ffmpeg 参数
// 视频与音频均使用流复制，禁止转码，保证输出码流与源文件逐字节兼容
func (t *Trimmer) buildTrimArgs(spec TrimSpec) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-ss", strconv.FormatFloat(spec.StartSec, 'f', 3, 64),
		"-i", spec.Input,
		"-t", strconv.FormatFloat(spec.DurationSec, 'f', 3, 64),
		"-c:v", "copy",
		"-c:a", "copy",
		"-avoid_negative_ts", "make_zero",
		spec.Output,
	}
}

// Trim 执行 [StartSec, StartSec+DurationSec) 的无损裁剪
// 阻塞直到外部进程退出，不设内部超时；调用方可通过 ctx 设置截止时间
func (t *Trimmer) Trim(ctx context.Context, spec TrimSpec) error {
	if spec.Input == "" || spec.Output == "" {
		return fmt.Errorf("trim: input and output are required")
	}
	if spec.DurationSec <= 0 {
		return fmt.Errorf("trim: invalid duration %v", spec.DurationSec)
	}
	if err := os.MkdirAll(filepath.Dir(spec.Output), 0o755); err != nil {
		return fmt.Errorf("trim: mkdir output dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, t.bin, t.buildTrimArgs(spec)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &ToolError{Input: spec.Input, Stderr: stderr.String(), Err: err}
	}
	return nil
}

// Duration 通过 ffprobe 获取视频总时长（秒）
func Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = string(ee.Stderr)
		}
		return 0, &ToolError{Input: path, Stderr: stderr, Err: err}
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %q: parse duration: %w", path, err)
	}
	return dur, nil
}
