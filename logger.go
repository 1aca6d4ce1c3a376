package latexify

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/riverfjs/latexify-go/internal/normalizer"
)

// Logger 全局日志记录器
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "latexify",
})

func init() {
	normalizer.SetLogger(Logger)
}

// SetLogger 设置自定义日志记录器，同时接管归一化核心的诊断跟踪
func SetLogger(logger *log.Logger) {
	Logger = logger
	normalizer.SetLogger(logger)
}

// SetVerboseLogging 将日志级别降到 Debug，使 Verbosity 跟踪可见
func SetVerboseLogging() {
	Logger.SetLevel(log.DebugLevel)
}
