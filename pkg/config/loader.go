package config

import (
	"os"
	"strings"

	"github.com/decker502/voidline/pkg/embedded"
)

// readConfigFile 读取配置文件
// "data/" 前缀且嵌入资源已初始化时从 embed.FS 读取，其余路径读取磁盘文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
