package game

// Input 平台层每帧提供的输入
type Input struct {
	Left     bool // 左方向键按住
	Right    bool // 右方向键按住
	Fire     bool // 空格键本帧按下（边沿触发）
	Continue bool // 回车键本帧按下，用于关闭暂停画面
	Quit     bool // 关闭窗口
}
