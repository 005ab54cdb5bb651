package clip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gowvp/camclip/internal/conf"
)

// 运行期重新指向输出目录后，下一轮清理必须扫到新目录
func TestCleanupResolvesOutputDirPerPass(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	for _, dir := range []string{dirA, dirB} {
		if err := os.Mkdir(filepath.Join(dir, "empty"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	core := NewCore(&fakeStore{clips: &fakeClipStore{}}, &fakeIDGen{},
		WithConfig(&conf.ServerClip{RetainDays: 1}),
	)

	dirs := []string{dirA, dirB}
	i := 0
	resolve := func() string {
		d := dirs[i]
		if i < len(dirs)-1 {
			i++
		}
		return d
	}

	core.cleanupExpiredClips(resolve)
	if _, err := os.Stat(filepath.Join(dirA, "empty")); !os.IsNotExist(err) {
		t.Error("first pass did not sweep the initial output dir")
	}
	if _, err := os.Stat(filepath.Join(dirB, "empty")); err != nil {
		t.Error("second dir must stay untouched before re-point")
	}

	core.cleanupExpiredClips(resolve)
	if _, err := os.Stat(filepath.Join(dirB, "empty")); !os.IsNotExist(err) {
		t.Error("pass after re-point did not sweep the new output dir")
	}
}
