package entities

import (
	"fmt"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
)

// BuildClips 把原型配置转换为按角色状态索引的动画片段
// 四个状态缺一不可，缺少时返回 config.ErrMissingClip
func BuildClips(archetype config.ArchetypeConfig) (map[components.CharacterState]*components.AnimationClip, error) {
	clips := make(map[components.CharacterState]*components.AnimationClip, len(components.AllCharacterStates))
	for _, state := range components.AllCharacterStates {
		clipCfg, ok := archetype.Clips[state.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", config.ErrMissingClip, state)
		}
		mode := components.PlayLoop
		if clipCfg.PlayMode == config.PlayModeOnce {
			mode = components.PlayOnce
		}
		frames := make([]string, len(clipCfg.Frames))
		copy(frames, clipCfg.Frames)
		clips[state] = &components.AnimationClip{
			Frames:        frames,
			FrameDuration: clipCfg.FrameDuration,
			Mode:          mode,
		}
	}
	return clips, nil
}
