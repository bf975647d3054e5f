package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig 配置内容不合法
	ErrInvalidConfig = errors.New("invalid config")
	// ErrMissingClip 角色原型缺少某个状态的动画
	ErrMissingClip = errors.New("missing animation clip")
)

// Vec2 YAML 中的二维向量
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector 转换为 cp.Vector
func (v Vec2) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// readFile 读取配置文件，错误信息带上配置名和路径
func readFile(kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s config file %s: %w", kind, path, err)
	}
	return data, nil
}

// decode 把 YAML 解析到已填好默认值的 out 上，文件中缺省的字段保留默认值
func decode(kind string, data []byte, out interface{}) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s config YAML: %w", kind, err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
