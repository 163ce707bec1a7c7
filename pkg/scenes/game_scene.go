package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
)

// textAlign HUD 文本的水平对齐方式
type textAlign int

const (
	alignLeft textAlign = iota
	alignCenter
	alignRight
)

// InputSource 每帧提供输入，默认读取键盘
type InputSource func() game.Input

// GameScene 游戏主场景
// 每个 tick 把键盘输入交给 Session 推进一帧，并绘制世界、HUD 和暂停画面。
type GameScene struct {
	session         *systems.Session
	resourceManager *ResourceManager
	cfg             *config.GameConfig

	hudFont *text.GoTextFace
	input   InputSource
	quit    bool
}

// NewGameScene 创建游戏场景
func NewGameScene(rm *ResourceManager, session *systems.Session) *GameScene {
	cfg := session.Config()
	return &GameScene{
		session:         session,
		resourceManager: rm,
		cfg:             cfg,
		hudFont:         rm.LoadFont(cfg.Layout.FontSize),
		input:           utils.GetGameInput,
	}
}

// SetInputSource 替换输入来源
func (s *GameScene) SetInputSource(src InputSource) {
	s.input = src
}

// QuitRequested 实现 Quitter
func (s *GameScene) QuitRequested() bool {
	return s.quit
}

// Update 推进一帧
// 游戏逻辑按帧推进，deltaTime 不参与计算
func (s *GameScene) Update(deltaTime float64) {
	in := s.input()
	if in.Quit {
		s.quit = true
		return
	}
	s.session.Update(in)
}

// Draw 绘制当前画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	state := s.session.State()
	if !state.IsRunning() {
		s.drawMessage(screen, state.MainText, state.SubText)
		return
	}

	world := s.session.World()
	s.drawSprite(screen, SpritePlayer, world.Player.Bounds())
	world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		s.drawSprite(screen, SpriteAlien, a.Bounds())
	})
	world.PlayerBullets.Each(func(_ ecs.EntityID, b *entities.Bullet) {
		s.drawSprite(screen, SpritePlayerBullet, b.Bounds())
	})
	world.AlienBullets.Each(func(_ ecs.EntityID, b *entities.Bullet) {
		s.drawSprite(screen, SpriteAlienBullet, b.Bounds())
	})

	s.drawHUD(screen, state, world.Player.Lives)
}

// drawSprite 把精灵缩放到实体的包围盒
func (s *GameScene) drawSprite(screen *ebiten.Image, kind SpriteKind, r components.Rect) {
	img := s.resourceManager.GetSprite(kind)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(w), r.Height/float64(h))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

// drawHUD 绘制分数、回合、生命和两条分界线
func (s *GameScene) drawHUD(screen *ebiten.Image, state *game.GameState, lives int) {
	layout := s.cfg.Layout
	width := s.cfg.Window.Width

	s.drawText(screen, fmt.Sprintf("Score: %d", state.Score), width/2, layout.HUDTextY, alignCenter)
	s.drawText(screen, fmt.Sprintf("Round: %d", state.Round), layout.HUDMarginX, layout.HUDTextY, alignLeft)
	s.drawText(screen, fmt.Sprintf("Lives: %d", lives), width-layout.HUDMarginX, layout.HUDTextY, alignRight)

	lineWidth := float32(layout.LineWidth)
	for _, y := range []float64{layout.HUDLineY, s.cfg.BreachLineY()} {
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), lineWidth, color.White, false)
	}
}

// drawMessage 暂停/结束画面：黑底，两行文本居中
func (s *GameScene) drawMessage(screen *ebiten.Image, mainText, subText string) {
	cx := s.cfg.Window.Width / 2
	cy := s.cfg.Window.Height / 2

	_, lineHeight := text.Measure(mainText, s.hudFont, 0)
	s.drawText(screen, mainText, cx, cy-lineHeight/2, alignCenter)
	s.drawText(screen, subText, cx, cy+s.cfg.Layout.MessageSpacing-lineHeight/2, alignCenter)
}

// drawText 以 (x, y) 为锚点绘制白色文本，y 为文本顶部
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, align textAlign) {
	if str == "" {
		return
	}

	textWidth, _ := text.Measure(str, s.hudFont, 0)
	switch align {
	case alignCenter:
		x -= textWidth / 2
	case alignRight:
		x -= textWidth
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, str, s.hudFont, op)
}
