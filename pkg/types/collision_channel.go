// Package types 定义共享的基础类型
package types

import "fmt"

// CollisionChannel 射线检测使用的碰撞通道
type CollisionChannel int

const (
	// ChannelVisibility 可见性通道，光标悬停检测使用
	ChannelVisibility CollisionChannel = iota
	// ChannelCamera 摄像机通道
	ChannelCamera
	// ChannelPawn 角色移动通道
	ChannelPawn
)

// String 返回通道名称（用于日志和配置）
func (c CollisionChannel) String() string {
	switch c {
	case ChannelVisibility:
		return "visibility"
	case ChannelCamera:
		return "camera"
	case ChannelPawn:
		return "pawn"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ChannelMask 一组被阻挡的通道（位掩码）
type ChannelMask uint32

// MaskOf 由若干通道构造掩码
func MaskOf(channels ...CollisionChannel) ChannelMask {
	var m ChannelMask
	for _, c := range channels {
		m |= 1 << uint(c)
	}
	return m
}

// Blocks 检查掩码是否阻挡指定通道
func (m ChannelMask) Blocks(c CollisionChannel) bool {
	return m&(1<<uint(c)) != 0
}

// ParseCollisionChannel 从配置字符串解析通道
func ParseCollisionChannel(name string) (CollisionChannel, error) {
	switch name {
	case "visibility":
		return ChannelVisibility, nil
	case "camera":
		return ChannelCamera, nil
	case "pawn":
		return ChannelPawn, nil
	}
	return 0, fmt.Errorf("unknown collision channel %q", name)
}
