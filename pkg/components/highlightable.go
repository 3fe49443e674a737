package components

// Highlightable 可被光标悬停高亮的能力
//
// 两个方法都必须是幂等的：重复调用 Highlight 与调用一次效果相同。
// 调用方不关心返回值，也不处理失败。
type Highlightable interface {
	// Highlight 光标移入时调用
	Highlight()
	// Unhighlight 光标移出时调用
	Unhighlight()
}
