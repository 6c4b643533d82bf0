package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"kr-calendar/constants"
)

// AppConfig 应用整体配置
// HoverDistancePx: 屏幕右下角悬停热区边长（像素）；
// PollIntervalMs: 悬停轮询周期（毫秒）；
// DrainIntervalMs: GUI 动作队列排空周期（毫秒）；
// Years: 需要加载节假日的年份（为空时使用当前年份）；
// AutostartEnabled: 开机自启；NativeTrayEnabled: 是否尝试原生托盘悬停事件
type AppConfig struct {
	HoverDistancePx   int   `json:"hover_distance_px"`
	PollIntervalMs    int   `json:"poll_interval_ms"`
	DrainIntervalMs   int   `json:"drain_interval_ms"`
	Years             []int `json:"years"`
	AutostartEnabled  bool  `json:"autostart_enabled"`
	NativeTrayEnabled bool  `json:"native_tray_enabled"`
}

var (
	mu  sync.RWMutex
	app AppConfig
)

// Init 初始化默认配置并尝试加载持久化文件
func Init() {
	app.HoverDistancePx = 220
	app.PollIntervalMs = 120
	app.DrainIntervalMs = 80
	app.NativeTrayEnabled = true
	_ = Load()
}

// configPath 返回配置文件路径：%APPDATA%/KrCalendar/config.json
func configPath() string {
	dir, _ := os.UserConfigDir()
	if dir == "" {
		dir = "."
	}
	p := filepath.Join(dir, constants.TextAppTitle)
	_ = os.MkdirAll(p, 0755)
	return filepath.Join(p, "config.json")
}

// Load 读取配置文件（JSON），并填充到全局 app 变量
func Load() error {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.Open(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	var c AppConfig
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return err
	}
	if c.HoverDistancePx > 0 {
		app.HoverDistancePx = c.HoverDistancePx
	}
	if c.PollIntervalMs > 0 {
		app.PollIntervalMs = c.PollIntervalMs
	}
	if c.DrainIntervalMs > 0 {
		app.DrainIntervalMs = c.DrainIntervalMs
	}
	app.Years = c.Years
	app.AutostartEnabled = c.AutostartEnabled
	app.NativeTrayEnabled = c.NativeTrayEnabled
	return nil
}

// Save 写入当前 app 配置到文件（JSON 缩进）
func Save() error {
	mu.RLock()
	c := app
	mu.RUnlock()
	f, err := os.Create(configPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// GetHoverDistancePx 返回悬停热区边长（像素）
func GetHoverDistancePx() int { mu.RLock(); defer mu.RUnlock(); return app.HoverDistancePx }

// SetHoverDistancePx 设置悬停热区边长并持久化
func SetHoverDistancePx(n int) { mu.Lock(); app.HoverDistancePx = n; mu.Unlock(); _ = Save() }

// GetPollInterval 返回悬停轮询周期
func GetPollInterval() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return time.Duration(app.PollIntervalMs) * time.Millisecond
}

// SetPollIntervalMs 设置悬停轮询周期（毫秒）并持久化
func SetPollIntervalMs(n int) { mu.Lock(); app.PollIntervalMs = n; mu.Unlock(); _ = Save() }

// GetDrainInterval 返回动作队列排空周期
func GetDrainInterval() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return time.Duration(app.DrainIntervalMs) * time.Millisecond
}

// SetDrainIntervalMs 设置动作队列排空周期（毫秒）并持久化
func SetDrainIntervalMs(n int) { mu.Lock(); app.DrainIntervalMs = n; mu.Unlock(); _ = Save() }

// GetYears 返回节假日年份列表副本；未配置时返回当前年份
func GetYears() []int {
	mu.RLock()
	defer mu.RUnlock()
	if len(app.Years) == 0 {
		return []int{time.Now().Year()}
	}
	return append([]int(nil), app.Years...)
}

// SetYears 设置节假日年份列表并持久化
func SetYears(years []int) {
	mu.Lock()
	app.Years = append([]int(nil), years...)
	mu.Unlock()
	_ = Save()
}

// GetAutostartEnabled 返回是否开机自启
func GetAutostartEnabled() bool { mu.RLock(); defer mu.RUnlock(); return app.AutostartEnabled }

// SetAutostartEnabled 设置开机自启并持久化
func SetAutostartEnabled(v bool) { mu.Lock(); app.AutostartEnabled = v; mu.Unlock(); _ = Save() }

// GetNativeTrayEnabled 返回是否尝试原生托盘悬停事件
func GetNativeTrayEnabled() bool { mu.RLock(); defer mu.RUnlock(); return app.NativeTrayEnabled }

// SetNativeTrayEnabled 设置是否尝试原生托盘悬停事件并持久化
func SetNativeTrayEnabled(v bool) { mu.Lock(); app.NativeTrayEnabled = v; mu.Unlock(); _ = Save() }
