package components

// PlayerControlledComponent 标记由本地玩家控制的角色
type PlayerControlledComponent struct{}

// MoveInputComponent 当前帧的移动输入
// (X, Y) 为归一化的二维向量：X 为向右，Y 为向前，长度不超过 1
type MoveInputComponent struct {
	X, Y float64
}

// MovementComponent 移动参数
type MovementComponent struct {
	// Speed 移动速度（像素/秒）
	Speed float64
}
