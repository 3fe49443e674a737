// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：相对于关卡左上角（固定）
//   - **屏幕坐标**：相对于游戏窗口左上角（随摄像机移动）
//   - **实体锚点**：PositionComponent.X/Y 代表实体的中心
//
// # 核心转换公式
//
//	worldX = screenX + camera.X
//	worldY = screenY + camera.Y
package utils

import (
	"errors"

	"github.com/gonewx/aura/pkg/components"
	"github.com/gonewx/aura/pkg/ecs"
)

// ErrNoCamera 表示场景中不存在摄像机实体
var ErrNoCamera = errors.New("no camera entity")

// ScreenToWorld 将屏幕坐标转换为世界坐标
func ScreenToWorld(cam *components.CameraComponent, screenX, screenY float64) (float64, float64) {
	return screenX + cam.X, screenY + cam.Y
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(cam *components.CameraComponent, worldX, worldY float64) (float64, float64) {
	return worldX - cam.X, worldY - cam.Y
}

// FindCamera 返回场景中的摄像机组件（ID 最小的一个）
//
// 场景中没有摄像机时返回 ErrNoCamera
func FindCamera(em *ecs.EntityManager) (ecs.EntityID, *components.CameraComponent, error) {
	cameras := ecs.GetEntitiesWith1[*components.CameraComponent](em)
	if len(cameras) == 0 {
		return 0, nil, ErrNoCamera
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](em, cameras[0])
	return cameras[0], cam, nil
}
