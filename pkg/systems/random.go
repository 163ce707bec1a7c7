package systems

// RandomSource 可注入的随机数来源
// *rand.Rand 满足此接口；测试中可替换为固定序列以强制外星人开火
type RandomSource interface {
	// Intn 返回 [0, n) 范围内的整数
	Intn(n int) int
}
