// Gói cfg chịu trách nhiệm nạp cấu hình cho collector.
// Cấu hình được truyền tường minh vào các thành phần, không dùng biến toàn cục.

package cfg

import (
	"sync"
)

var (
	loader     Loader
	loaderOnce sync.Once
)

type Loader interface {
	Load() (*Config, error)
}

func NewLoader(l Loader) (Loader, error) {
	loaderOnce.Do(func() {
		loader = l
	})
	return loader, nil
}
