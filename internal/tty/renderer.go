// Package tty 是游戏的终端前端
//
// 画布坐标按比例映射到终端字符格，输入来自 tcell 按键事件，
// 与窗口前端共用同一个 systems.Session。
package tty

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
)

// 各类实体的字符与样式
const (
	glyphPlayer       = '▲'
	glyphAlien        = 'W'
	glyphPlayerBullet = '|'
	glyphAlienBullet  = '!'
	glyphDivider      = '─'
)

var (
	styleDefault      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer       = styleDefault.Foreground(tcell.ColorGreen)
	styleAlien        = styleDefault.Foreground(tcell.ColorYellow)
	stylePlayerBullet = styleDefault.Foreground(tcell.NewRGBColor(140, 220, 255))
	styleAlienBullet  = styleDefault.Foreground(tcell.ColorRed)
)

// Renderer 把游戏画面绘制到终端
type Renderer struct {
	screen tcell.Screen
	cfg    *config.GameConfig
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, cfg *config.GameConfig) *Renderer {
	return &Renderer{screen: screen, cfg: cfg}
}

// Draw 绘制一帧并提交到终端
func (r *Renderer) Draw(session *systems.Session) {
	r.screen.Fill(' ', styleDefault)

	state := session.State()
	if state.IsRunning() {
		r.drawWorld(session.World(), state)
	} else {
		r.drawMessage(state.MainText, state.SubText)
	}

	r.screen.Show()
}

func (r *Renderer) drawWorld(world *entities.World, state *game.GameState) {
	cols, _ := r.screen.Size()
	for _, y := range []float64{r.cfg.Layout.HUDLineY, r.cfg.BreachLineY()} {
		row := r.rowOf(y)
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, row, glyphDivider, nil, styleDefault)
		}
	}

	world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		r.fillRect(a.Bounds(), glyphAlien, styleAlien)
	})
	world.PlayerBullets.Each(func(_ ecs.EntityID, b *entities.Bullet) {
		r.fillRect(b.Bounds(), glyphPlayerBullet, stylePlayerBullet)
	})
	world.AlienBullets.Each(func(_ ecs.EntityID, b *entities.Bullet) {
		r.fillRect(b.Bounds(), glyphAlienBullet, styleAlienBullet)
	})
	r.fillRect(world.Player.Bounds(), glyphPlayer, stylePlayer)

	// HUD 行覆盖在最上方
	hudRow := r.rowOf(r.cfg.Layout.HUDTextY)
	score := fmt.Sprintf("Score: %d", state.Score)
	lives := fmt.Sprintf("Lives: %d", world.Player.Lives)
	r.drawString((cols-len(score))/2, hudRow, score)
	r.drawString(1, hudRow, fmt.Sprintf("Round: %d", state.Round))
	r.drawString(cols-len(lives)-1, hudRow, lives)
}

// drawMessage 暂停/结束画面，两行文本居中
func (r *Renderer) drawMessage(mainText, subText string) {
	cols, _ := r.screen.Size()
	mid := r.cfg.Window.Height / 2
	mainRow := r.rowOf(mid)
	subRow := r.rowOf(mid + r.cfg.Layout.MessageSpacing)
	if subRow <= mainRow {
		subRow = mainRow + 1
	}

	r.drawString((cols-len([]rune(mainText)))/2, mainRow, mainText)
	r.drawString((cols-len([]rune(subText)))/2, subRow, subText)
}

// fillRect 用字符填满矩形覆盖的所有字符格，至少一格
func (r *Renderer) fillRect(rect components.Rect, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	c0, c1 := span(rect.Left(), rect.Right(), r.cfg.Window.Width, cols)
	r0, r1 := span(rect.Top(), rect.Bottom(), r.cfg.Window.Height, rows)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// span 把画布区间 [lo, hi) 映射为字符格下标区间
func span(lo, hi, extent float64, cells int) (int, int) {
	scale := float64(cells) / extent
	start := int(math.Floor(lo * scale))
	end := int(math.Ceil(hi*scale)) - 1
	if end < start {
		end = start
	}
	return clampInt(start, 0, cells-1), clampInt(end, 0, cells-1)
}

func (r *Renderer) rowOf(y float64) int {
	_, rows := r.screen.Size()
	return clampInt(int(y*float64(rows)/r.cfg.Window.Height), 0, rows-1)
}

func (r *Renderer) drawString(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, styleDefault)
		x++
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(hi, v))
}
