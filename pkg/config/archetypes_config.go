package config

import "fmt"

// RequiredClips 每个角色原型必须提供的动画片段
var RequiredClips = []string{"idle", "run", "hit", "die"}

// onceClips 状态机等待播完才离开的片段，必须只播放一次
var onceClips = map[string]bool{"hit": true, "die": true}

// 播放模式
const (
	PlayModeLoop = "loop"
	PlayModeOnce = "once"
)

// ArchetypesConfig 角色原型（外观动画）
//
// 配置文件位置: data/archetypes.yaml
type ArchetypesConfig struct {
	Archetypes map[string]ArchetypeConfig `yaml:"archetypes"`
}

// ArchetypeConfig 单个角色原型：状态名 -> 动画片段
type ArchetypeConfig struct {
	Clips map[string]ClipConfig `yaml:"clips"`
}

// ClipConfig 动画片段
type ClipConfig struct {
	Frames        []string `yaml:"frames"`
	FrameDuration float64  `yaml:"frameDuration"`
	PlayMode      string   `yaml:"playMode"`
}

// FrameRange 生成 prefix_start ... prefix_end（含两端）的帧名
func FrameRange(prefix string, start, end int) []string {
	frames := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		frames = append(frames, fmt.Sprintf("%s_%02d", prefix, i))
	}
	return frames
}

// prisonerClips/policemanClips 两种角色贴图共用的帧区间
func prisonerClips(prefix string) ArchetypeConfig {
	return ArchetypeConfig{Clips: map[string]ClipConfig{
		"idle": {Frames: FrameRange(prefix, 9, 10), FrameDuration: 0.2, PlayMode: PlayModeLoop},
		"run":  {Frames: FrameRange(prefix, 1, 4), FrameDuration: 0.1, PlayMode: PlayModeLoop},
		"hit":  {Frames: FrameRange(prefix, 5, 6), FrameDuration: 0.1, PlayMode: PlayModeOnce},
		"die":  {Frames: FrameRange(prefix, 6, 8), FrameDuration: 0.15, PlayMode: PlayModeOnce},
	}}
}

func policemanClips(prefix string) ArchetypeConfig {
	return ArchetypeConfig{Clips: map[string]ClipConfig{
		"idle": {Frames: FrameRange(prefix, 10, 11), FrameDuration: 0.2, PlayMode: PlayModeLoop},
		"run":  {Frames: FrameRange(prefix, 1, 5), FrameDuration: 0.1, PlayMode: PlayModeLoop},
		"hit":  {Frames: FrameRange(prefix, 6, 7), FrameDuration: 0.1, PlayMode: PlayModeOnce},
		"die":  {Frames: FrameRange(prefix, 7, 9), FrameDuration: 0.15, PlayMode: PlayModeOnce},
	}}
}

// DefaultArchetypesConfig 囚犯、警察及其僵尸版本
func DefaultArchetypesConfig() *ArchetypesConfig {
	return &ArchetypesConfig{Archetypes: map[string]ArchetypeConfig{
		"prisoner":         prisonerClips("prisoner"),
		"policeman":        policemanClips("policeman"),
		"zombie_prisoner":  prisonerClips("zombie_prisoner"),
		"zombie_policeman": policemanClips("zombie_policeman"),
	}}
}

// LoadArchetypesConfig 从 YAML 文件加载角色原型
func LoadArchetypesConfig(path string) (*ArchetypesConfig, error) {
	data, err := readFile("archetypes", path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseArchetypesConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseArchetypesConfig 解析角色原型
func ParseArchetypesConfig(data []byte) (*ArchetypesConfig, error) {
	var cfg ArchetypesConfig
	if err := decode("archetypes", data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 每个原型都必须有 idle/run/hit/die 四个片段，hit/die 必须是 once
// 缺少片段返回 ErrMissingClip，内容错误返回 ErrInvalidConfig
func (c *ArchetypesConfig) Validate() error {
	if len(c.Archetypes) == 0 {
		return invalid("at least one archetype is required")
	}
	for name, archetype := range c.Archetypes {
		if err := archetype.Validate(); err != nil {
			return fmt.Errorf("archetype %q: %w", name, err)
		}
	}
	return nil
}

// Validate 校验单个原型
func (a ArchetypeConfig) Validate() error {
	for _, state := range RequiredClips {
		clip, ok := a.Clips[state]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingClip, state)
		}
		if len(clip.Frames) == 0 {
			return invalid("clip %s has no frames", state)
		}
		if clip.FrameDuration <= 0 {
			return invalid("clip %s: frameDuration must be positive", state)
		}
		switch clip.PlayMode {
		case "", PlayModeLoop, PlayModeOnce:
		default:
			return invalid("clip %s: playMode must be loop or once, got %q", state, clip.PlayMode)
		}
		if onceClips[state] && clip.PlayMode != PlayModeOnce {
			return invalid("clip %s: playMode must be once", state)
		}
	}
	return nil
}

// Get 按名字查找原型
func (c *ArchetypesConfig) Get(name string) (ArchetypeConfig, error) {
	archetype, ok := c.Archetypes[name]
	if !ok {
		return ArchetypeConfig{}, invalid("unknown archetype %q", name)
	}
	return archetype, nil
}
