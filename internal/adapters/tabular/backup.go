package tabular

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	perr "polesplit/internal/platform/errors"
)

// seam for deterministic backup names in tests
var now = time.Now

// Backup copies path to <stem>_backup_<YYYYMMDD_HHMMSS><ext> next to it.
// Returns the backup path, or "" when path does not exist.
func Backup(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	base := filepath.Base(path)
	e := filepath.Ext(base)
	stem := strings.TrimSuffix(base, e)
	stamp := now().Format("20060102_150405")
	dst := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_backup_%s%s", stem, stamp, e))

	if err := copyFile(path, dst); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "backup %s", path)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
