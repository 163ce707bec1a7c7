package entities

// SpawnFormation 生成一个回合的外星人编队
// 网格按列优先生成：第 i 列第 j 行位于 (originX + i*spacing, originY + j*spacing)
//
// 返回:
//   - int: 生成的外星人数量
func SpawnFormation(w *World, velocity float64) int {
	cfg := w.Config.Alien

	count := 0
	for i := 0; i < cfg.Columns; i++ {
		for j := 0; j < cfg.Rows; j++ {
			x := cfg.OriginX + float64(i)*cfg.Spacing
			y := cfg.OriginY + float64(j)*cfg.Spacing
			w.Aliens.Add(NewAlien(x, y, cfg.Width, cfg.Height, velocity))
			count++
		}
	}
	return count
}
