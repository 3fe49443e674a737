package config

import (
	"path"
	"sort"
	"strings"

	"github.com/gonewx/aura/pkg/embedded"
)

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640

	// DefaultLevelID 未指定 --level 时加载的关卡
	DefaultLevelID = "courtyard"
	// InputMappingPath 默认输入映射上下文
	InputMappingPath = "data/input/mapping.yaml"
)

// LevelPath 返回关卡配置文件路径
func LevelPath(levelID string) string {
	return "data/levels/" + levelID + ".yaml"
}

// ListLevelIDs 列出嵌入资源中的全部关卡ID（按字母排序）
func ListLevelIDs() ([]string, error) {
	files, err := embedded.Glob("data/levels/*.yaml")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(path.Base(f), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}
