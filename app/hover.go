package app

import (
	"time"

	"kr-calendar/logging"
)

// HoverGeometry 一次悬停判定所需的屏幕指标，每次轮询重新采集
type HoverGeometry struct {
	ScreenW, ScreenH int
	CursorX, CursorY int

	// 弹窗当前可见时的包围盒（屏幕坐标）
	PopupVisible   bool
	PopupX, PopupY int
	PopupW, PopupH int
}

// Near 统一的悬停判定：光标落在右下角热区内，或落在可见弹窗的
// 包围盒内（从托盘图标移入弹窗时不提前隐藏）
func Near(g HoverGeometry, hoverDistance int) bool {
	if (g.ScreenW-g.CursorX) <= hoverDistance && (g.ScreenH-g.CursorY) <= hoverDistance {
		return true
	}
	if g.PopupVisible &&
		g.CursorX >= g.PopupX && g.CursorX <= g.PopupX+g.PopupW &&
		g.CursorY >= g.PopupY && g.CursorY <= g.PopupY+g.PopupH {
		return true
	}
	return false
}

// MetricsFunc 采集一次 HoverGeometry（由 platform 层注入）
type MetricsFunc func() (HoverGeometry, error)

// Requester 接收显示/隐藏/切换请求（由 TrayApp 实现，内部走动作队列）
type Requester interface {
	RequestShow()
	RequestHide()
	RequestToggle()
}

// HoverSource 悬停检测来源（原生事件或轮询），启动后运行到 Stop
type HoverSource interface {
	Start() error
	Stop()
}

// PollingHoverSource 定时轮询光标位置的悬停检测
// 每个周期采集一次屏幕指标并用 Near 判定，判定结果转为 show/hide 请求。
// 指标采集或请求派发的任何失败都被吞掉，循环在下个周期继续。
type PollingHoverSource struct {
	metrics  MetricsFunc
	req      Requester
	interval time.Duration
	distance int
	stop     chan struct{}
}

// NewPollingHoverSource 创建轮询悬停源
func NewPollingHoverSource(metrics MetricsFunc, req Requester, interval time.Duration, distance int) *PollingHoverSource {
	if interval <= 0 {
		interval = 120 * time.Millisecond
	}
	if distance <= 0 {
		distance = 220
	}
	return &PollingHoverSource{
		metrics:  metrics,
		req:      req,
		interval: interval,
		distance: distance,
		stop:     make(chan struct{}),
	}
}

// Start 启动后台轮询
func (s *PollingHoverSource) Start() error {
	go s.loop()
	return nil
}

func (s *PollingHoverSource) loop() {
	defer logging.RecoverPanic("PollingHoverSource.loop")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick 执行一次判定；任何 panic 只作用于本次周期
func (s *PollingHoverSource) tick() {
	defer logging.RecoverPanic("PollingHoverSource.tick")
	g, err := s.metrics()
	if err != nil {
		return
	}
	if Near(g, s.distance) {
		s.req.RequestShow()
	} else {
		s.req.RequestHide()
	}
}

// Stop 停止轮询（幂等）
func (s *PollingHoverSource) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}
