// Paginator duyệt qua các trang kết quả của search API theo thứ tự tăng dần.
// Chuỗi kết quả là lazy, hữu hạn và chỉ tiến về phía trước, không thể restart.

package githubapi

import (
	"context"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/pkg/log"
)

type Paginator struct {
	Logger   log.Logger
	Config   *cfg.Config
	Caller   *Caller
	maxPages int
	perPage  int
	page     int
	buf      []Item
	pos      int
	done     bool
}

func NewPaginator(logger log.Logger, config *cfg.Config, caller *Caller, maxPages int) *Paginator {
	perPage := config.Crawler.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	return &Paginator{
		Logger:   logger,
		Config:   config,
		Caller:   caller,
		maxPages: maxPages,
		perPage:  perPage,
	}
}

// NextPage tải trang kế tiếp và trả về toàn bộ entry của trang đó.
// Trả về slice rỗng khi đã hết trang.
func (p *Paginator) NextPage(ctx context.Context) ([]Item, error) {
	if p.done || p.page >= p.maxPages {
		p.done = true
		return nil, nil
	}

	p.page++
	items, err := p.Caller.Search(ctx, p.page, p.perPage)
	if err != nil {
		p.done = true
		return nil, err
	}

	// Trang rỗng hoặc trang ngắn nghĩa là nguồn đã hết dữ liệu
	if len(items) == 0 {
		p.done = true
		return nil, nil
	}
	if len(items) < p.perPage {
		p.done = true
	}

	return items, nil
}

// Next trả về từng entry một, giữ nguyên thứ tự xếp hạng trong trang
func (p *Paginator) Next(ctx context.Context) (Item, bool, error) {
	if p.pos >= len(p.buf) {
		items, err := p.NextPage(ctx)
		if err != nil {
			return Item{}, false, err
		}
		if len(items) == 0 {
			return Item{}, false, nil
		}
		p.buf = items
		p.pos = 0
	}

	item := p.buf[p.pos]
	p.pos++
	return item, true, nil
}
