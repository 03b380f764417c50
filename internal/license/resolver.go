// Gói license tra cứu license của repository qua API.
// Không có license là một giá trị dữ liệu, không phải lỗi.

package license

import (
	"context"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/pkg/log"
)

// NoLicense là giá trị sentinel khi repository không có license
const NoLicense = "None"

type Resolver struct {
	Logger log.Logger
	Config *cfg.Config
	Caller *githubapi.Caller
}

func NewResolver(logger log.Logger, config *cfg.Config, caller *githubapi.Caller) (*Resolver, error) {
	return &Resolver{
		Logger: logger,
		Config: config,
		Caller: caller,
	}, nil
}

// Resolve trả về tên hiển thị của license, hoặc NoLicense khi không có.
// Lỗi chỉ được trả về khi transport thất bại thực sự.
func (r *Resolver) Resolve(ctx context.Context, user, repo string) (string, error) {
	resp, err := r.Caller.FetchLicense(ctx, user, repo)
	if err != nil {
		return "", err
	}

	if resp == nil || resp.License == nil || resp.License.Name == "" {
		return NoLicense, nil
	}

	return resp.License.Name, nil
}
