package crawler

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bộ đếm tiến độ một dòng, tăng một lần cho mỗi bản ghi đã ghi thành công
func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("collecting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
