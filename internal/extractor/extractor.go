// Gói extractor trích xuất các số liệu không có trong JSON API
// từ trang HTML đã render của repository.

package extractor

import (
	"context"
	"fmt"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/pkg/log"
)

// HtmlStats chứa bốn bộ đếm lấy từ trang repository.
// Cả bốn giá trị phải cùng xuất hiện, không có bản ghi một phần.
type HtmlStats struct {
	Commits      int
	Branches     int
	Releases     int
	Contributors int
}

type Extractor interface {
	Extract(ctx context.Context, user, repo string) (HtmlStats, error)
}

func FactoryExtractor(version string, logger log.Logger, config *cfg.Config, caller *githubapi.Caller) (Extractor, error) {
	switch version {
	case "v1":
		return NewExtractorV1(logger, config, caller)
	case "", "v2":
		return NewExtractorV2(logger, config, caller)
	default:
		return nil, fmt.Errorf("[ERROR] Unsupported extractor version: %s", version)
	}
}
