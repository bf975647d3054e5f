package components

import "math"

// PlayMode 动画播放模式
type PlayMode int

const (
	// PlayLoop 循环播放
	PlayLoop PlayMode = iota
	// PlayOnce 播放一次后停在最后一帧
	PlayOnce
)

// String 返回配置文件中的写法
func (m PlayMode) String() string {
	if m == PlayOnce {
		return "once"
	}
	return "loop"
}

// AnimationClip 一段帧动画
type AnimationClip struct {
	// Frames 按顺序排列的图集区域名
	Frames []string
	// FrameDuration 每帧持续时间（秒）
	FrameDuration float64
	// Mode 播放模式
	Mode PlayMode
}

// Duration 整段动画的时长
func (c *AnimationClip) Duration() float64 {
	return float64(len(c.Frames)) * c.FrameDuration
}

// IsFinished 播放 elapsed 秒后是否已播完一遍，与播放模式无关
func (c *AnimationClip) IsFinished(elapsed float64) bool {
	return elapsed >= c.Duration()
}

// KeyFrame 返回播放 elapsed 秒时应显示的帧
func (c *AnimationClip) KeyFrame(elapsed float64) string {
	n := len(c.Frames)
	if n == 0 {
		return ""
	}
	if n == 1 || c.FrameDuration <= 0 {
		return c.Frames[0]
	}

	index := int(math.Floor(elapsed / c.FrameDuration))
	if index < 0 {
		index = 0
	}
	switch c.Mode {
	case PlayOnce:
		if index >= n {
			index = n - 1
		}
	default:
		index %= n
	}
	return c.Frames[index]
}

// AnimationComponent 按角色状态选择动画片段
type AnimationComponent struct {
	// Clips 状态 -> 动画片段
	Clips map[CharacterState]*AnimationClip
	// State 当前状态
	State CharacterState
	// Elapsed 当前片段已播放时间（秒）
	Elapsed float64
}

// Transition 切换到 state；只有状态真正改变时才从头播放
func (a *AnimationComponent) Transition(state CharacterState) {
	if a.State == state {
		return
	}
	a.State = state
	a.Elapsed = 0
}

// Restart 从头播放当前片段（同一状态被再次触发，如连续受击）
func (a *AnimationComponent) Restart() {
	a.Elapsed = 0
}

// CurrentClip 当前状态对应的片段，没有配置时返回 nil
func (a *AnimationComponent) CurrentClip() *AnimationClip {
	return a.Clips[a.State]
}

// CurrentFrame 当前应显示的帧
func (a *AnimationComponent) CurrentFrame() string {
	clip := a.CurrentClip()
	if clip == nil {
		return ""
	}
	return clip.KeyFrame(a.Elapsed)
}

// IsCurrentFinished 当前片段是否播放完毕；没有片段视为已完成
func (a *AnimationComponent) IsCurrentFinished() bool {
	clip := a.CurrentClip()
	if clip == nil {
		return true
	}
	return clip.IsFinished(a.Elapsed)
}

// Reset 中性状态：没有片段，IDLE，从头播放
func (a *AnimationComponent) Reset() {
	a.Clips = make(map[CharacterState]*AnimationClip, len(AllCharacterStates))
	a.State = StateIdle
	a.Elapsed = 0
}
