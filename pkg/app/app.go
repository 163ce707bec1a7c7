// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置、创建音频、会话和场景，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/internal/synth"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/systems"
)

// VolumeStep 每次按键调节的音量
const VolumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 外部配置文件路径，为空则使用内嵌的 data/invaders.yaml
	ConfigPath string
	// Mute 关闭音效
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *scenes.SceneManager
	session      *systems.Session
	audioManager *audio.AudioManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := ebitenaudio.NewContext(int(synth.SampleRate))
	audioManager, err := audio.NewAudioManager(audioContext, cfg.Mute)
	if err != nil {
		return nil, fmt.Errorf("音频初始化失败: %w", err)
	}
	log.Printf("[App] AudioManager initialized")

	resourceManager, err := scenes.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("渲染资源初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	session := systems.NewSession(gameConfig, audioManager, rand.New(rand.NewSource(seed)))

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(resourceManager, session))

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		session:      session,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 加载游戏配置
// path 为空时读取内嵌配置；未嵌入配置文件时使用默认值
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败 %s: %w", path, err)
		}
		log.Printf("[Config] Loaded %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() || !embedded.Exists(config.EmbeddedConfigPath) {
		log.Printf("[Config] %s not embedded, using defaults", config.EmbeddedConfigPath)
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(config.EmbeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置读取失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置解析失败: %w", err)
	}
	log.Printf("[Config] Loaded embedded %s", config.EmbeddedConfigPath)
	return cfg, nil
}

// GameConfig 返回已加载的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audioManager.SetMuted(!a.audioManager.IsMuted())
		log.Printf("[App] Muted: %v", a.audioManager.IsMuted())
	}

	// -/= 调节音量
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		log.Printf("[App] Volume: %.1f", a.audioManager.AdjustSoundVolume(-VolumeStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		log.Printf("[App] Volume: %.1f", a.audioManager.AdjustSoundVolume(VolumeStep))
	}

	a.sceneManager.Update(1.0 / float64(a.gameConfig.Window.TPS))
	if a.sceneManager.QuitRequested() {
		log.Printf("[App] Quit requested, final score %d", a.session.State().Score)
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest // 像素风格，不做插值
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.Window.Width), int(a.gameConfig.Window.Height)
}
