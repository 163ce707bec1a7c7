package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏参数配置
// 对应 data/invaders.yaml，所有尺寸单位为像素，速度单位为 像素/帧
// 难度与计分规则是固定常量（见 layout_config.go），不在此配置
type GameConfig struct {
	Window WindowConfig `yaml:"window"` // 窗口配置
	Player PlayerConfig `yaml:"player"` // 玩家飞船配置
	Alien  AlienConfig  `yaml:"alien"`  // 外星人编队配置
	Bullet BulletConfig `yaml:"bullet"` // 子弹配置
	Layout LayoutConfig `yaml:"layout"` // HUD 与分界线布局
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string  `yaml:"title"`  // 窗口标题
	Width  float64 `yaml:"width"`  // 逻辑画布宽度
	Height float64 `yaml:"height"` // 逻辑画布高度
	TPS    int     `yaml:"tps"`    // 每秒逻辑帧数
}

// PlayerConfig 玩家飞船配置
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // 水平移动速度
	Lives  int     `yaml:"lives"` // 初始生命数
}

// AlienConfig 外星人编队配置
type AlienConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	OriginX float64 `yaml:"originX"` // 编队左上角X
	OriginY float64 `yaml:"originY"` // 编队左上角Y
	Spacing float64 `yaml:"spacing"` // 网格间距
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutConfig HUD 与分界线布局
type LayoutConfig struct {
	HUDTextY       float64 `yaml:"hudTextY"`       // HUD 文本顶部Y
	HUDMarginX     float64 `yaml:"hudMarginX"`     // HUD 左右边距
	HUDLineY       float64 `yaml:"hudLineY"`       // 上分界线Y
	BreachOffset   float64 `yaml:"breachOffset"`   // 下分界线（入侵线）距窗口底部的距离
	LineWidth      float64 `yaml:"lineWidth"`      // 分界线宽度
	FontSize       float64 `yaml:"fontSize"`       // HUD 字号
	MessageSpacing float64 `yaml:"messageSpacing"` // 暂停画面两行文本的间距
}

// DefaultGameConfig 返回默认配置
// 与 data/invaders.yaml 的内容保持一致
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  DefaultWindowTitle,
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			TPS:    60,
		},
		Player: PlayerConfig{
			Width:  64,
			Height: 48,
			Speed:  8,
			Lives:  5,
		},
		Alien: AlienConfig{
			Columns: 11,
			Rows:    5,
			OriginX: 64,
			OriginY: 64,
			Spacing: 64,
			Width:   48,
			Height:  40,
		},
		Bullet: BulletConfig{
			Speed:  10,
			Width:  6,
			Height: 20,
		},
		Layout: LayoutConfig{
			HUDTextY:       10,
			HUDMarginX:     20,
			HUDLineY:       50,
			BreachOffset:   100,
			LineWidth:      4,
			FontSize:       32,
			MessageSpacing: 64,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据
// 未出现的字段沿用默认值；未知字段（包括难度规则）视为错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// BreachLineY 返回入侵线的Y坐标
func (c *GameConfig) BreachLineY() float64 {
	return c.Window.Height - c.Layout.BreachOffset
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", cfg.Window.TPS)
	}

	// 玩家
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Width > cfg.Window.Width {
		return fmt.Errorf("player.width %v exceeds window width %v", cfg.Player.Width, cfg.Window.Width)
	}
	if cfg.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be > 0, got %v", cfg.Player.Speed)
	}
	if cfg.Player.Lives < 1 {
		return fmt.Errorf("player.lives must be >= 1, got %d", cfg.Player.Lives)
	}

	// 外星人
	if cfg.Alien.Columns < 1 || cfg.Alien.Rows < 1 {
		return fmt.Errorf("alien grid must be at least 1x1, got %dx%d", cfg.Alien.Columns, cfg.Alien.Rows)
	}
	if cfg.Alien.Width <= 0 || cfg.Alien.Height <= 0 {
		return fmt.Errorf("alien size must be positive, got %vx%v", cfg.Alien.Width, cfg.Alien.Height)
	}
	if cfg.Alien.Spacing < cfg.Alien.Width {
		return fmt.Errorf("alien.spacing %v must not be smaller than alien.width %v", cfg.Alien.Spacing, cfg.Alien.Width)
	}
	formationRight := cfg.Alien.OriginX + float64(cfg.Alien.Columns-1)*cfg.Alien.Spacing + cfg.Alien.Width
	if cfg.Alien.OriginX <= 0 || formationRight >= cfg.Window.Width {
		return fmt.Errorf("alien formation [%v, %v] must fit strictly inside the window", cfg.Alien.OriginX, formationRight)
	}

	// 子弹
	if cfg.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be > 0, got %v", cfg.Bullet.Speed)
	}
	if cfg.Bullet.Width <= 0 || cfg.Bullet.Height <= 0 {
		return fmt.Errorf("bullet size must be positive, got %vx%v", cfg.Bullet.Width, cfg.Bullet.Height)
	}

	// 布局
	if cfg.Layout.BreachOffset <= 0 || cfg.Layout.BreachOffset >= cfg.Window.Height {
		return fmt.Errorf("layout.breachOffset must be in (0, %v), got %v", cfg.Window.Height, cfg.Layout.BreachOffset)
	}
	formationBottom := cfg.Alien.OriginY + float64(cfg.Alien.Rows-1)*cfg.Alien.Spacing + cfg.Alien.Height
	if formationBottom >= cfg.BreachLineY() {
		return fmt.Errorf("alien formation bottom %v must start above the breach line %v", formationBottom, cfg.BreachLineY())
	}
	if cfg.Layout.FontSize <= 0 {
		return fmt.Errorf("layout.fontSize must be > 0, got %v", cfg.Layout.FontSize)
	}

	return nil
}
