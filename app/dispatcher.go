package app

import (
	"sync"
	"time"

	"kr-calendar/logging"
)

// Dispatcher 跨线程 GUI 动作队列
// 任意线程通过 Enqueue 提交零参动作；后台重调度循环按固定周期
// 把整批排空操作投递到 GUI 线程执行（runOnUI 注入，gui 层传入 fyne.Do）。
// 动作严格按入队顺序执行，单个动作失败不影响后续动作。
type Dispatcher struct {
	mu      sync.Mutex
	queue   []func()
	runOnUI func(func())
	alive   func() bool
	stop    chan struct{}
	once    sync.Once
}

// NewDispatcher 创建动作队列
// runOnUI: 将函数投递到 GUI 线程执行的原语；alive: GUI 窗口是否仍存在
func NewDispatcher(runOnUI func(func()), alive func() bool) *Dispatcher {
	return &Dispatcher{runOnUI: runOnUI, alive: alive, stop: make(chan struct{})}
}

// Enqueue 追加一个待执行动作（任意线程可调用）
func (d *Dispatcher) Enqueue(action func()) {
	if action == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, action)
	d.mu.Unlock()
}

// Drain 立即执行当前已排队的全部动作（FIFO）
// 单个动作的 panic 被吞掉，保证后续动作继续执行
func (d *Dispatcher) Drain() {
	d.mu.Lock()
	pending := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, action := range pending {
		runSwallowed(action)
	}
}

func runSwallowed(action func()) {
	defer logging.RecoverPanic("Dispatcher.action")
	action()
}

// Start 启动重调度循环：每隔 interval 将一次排空投递到 GUI 线程
// 当 alive 返回 false（GUI 窗口已销毁）时循环自行结束
func (d *Dispatcher) Start(interval time.Duration) {
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}
	go d.loop(interval)
}

func (d *Dispatcher) loop(interval time.Duration) {
	defer logging.RecoverPanic("Dispatcher.loop")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			if d.alive != nil && !d.alive() {
				return
			}
			d.runOnUI(d.Drain)
		}
	}
}

// Stop 停止重调度循环（幂等）
func (d *Dispatcher) Stop() {
	d.once.Do(func() { close(d.stop) })
}

// Enqueue 向队列提交动作；队列尚未构建时回退到 runSoon 原语，
// 两者都不可用时静默丢弃请求
func Enqueue(d *Dispatcher, runSoon func(func()), action func()) {
	if action == nil {
		return
	}
	if d != nil {
		d.Enqueue(action)
		return
	}
	if runSoon != nil {
		runSoon(func() { runSwallowed(action) })
	}
}
