package latexify

import (
	"sync"

	"github.com/riverfjs/latexify-go/internal/types"
)

// 导出类型别名
type TransformConfig = types.Config
type Result = types.Result

var (
	defaultConfig     *TransformConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default transform configuration (singleton).
func DefaultConfig() *TransformConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
