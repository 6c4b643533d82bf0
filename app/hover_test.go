package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearCornerHotZone(t *testing.T) {
	g := HoverGeometry{ScreenW: 1920, ScreenH: 1080, CursorX: 1800, CursorY: 900}
	assert.True(t, Near(g, 220), "dx=120 dy=180 均在 220 以内")

	g.CursorX, g.CursorY = 1000, 500
	assert.False(t, Near(g, 220))
}

func TestNearHotZoneBoundary(t *testing.T) {
	// 恰好等于热区距离时算“近”
	g := HoverGeometry{ScreenW: 1920, ScreenH: 1080, CursorX: 1700, CursorY: 860}
	assert.True(t, Near(g, 220))

	g.CursorX = 1699
	assert.False(t, Near(g, 220))
}

func TestNearInsideVisiblePopup(t *testing.T) {
	g := HoverGeometry{
		ScreenW: 1920, ScreenH: 1080,
		CursorX: 500, CursorY: 500,
		PopupVisible: true,
		PopupX:       400, PopupY: 450, PopupW: 300, PopupH: 200,
	}
	assert.True(t, Near(g, 220))

	// 弹窗不可见时包围盒不参与判定
	g.PopupVisible = false
	assert.False(t, Near(g, 220))

	// 光标在包围盒之外
	g.PopupVisible = true
	g.CursorX = 399
	assert.False(t, Near(g, 220))
}

// recordRequester 记录请求次数的测试替身
type recordRequester struct {
	mu      sync.Mutex
	shows   int
	hides   int
	toggles int
}

func (r *recordRequester) RequestShow()   { r.mu.Lock(); r.shows++; r.mu.Unlock() }
func (r *recordRequester) RequestHide()   { r.mu.Lock(); r.hides++; r.mu.Unlock() }
func (r *recordRequester) RequestToggle() { r.mu.Lock(); r.toggles++; r.mu.Unlock() }

func (r *recordRequester) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shows, r.hides
}

func TestPollingHoverSourceRequestsShowWhenNear(t *testing.T) {
	req := &recordRequester{}
	near := HoverGeometry{ScreenW: 1920, ScreenH: 1080, CursorX: 1900, CursorY: 1060}
	s := NewPollingHoverSource(func() (HoverGeometry, error) { return near, nil }, req, 5*time.Millisecond, 220)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		shows, _ := req.counts()
		return shows > 0
	}, time.Second, 5*time.Millisecond)
	_, hides := req.counts()
	assert.Zero(t, hides)
}

func TestPollingHoverSourceRequestsHideWhenFar(t *testing.T) {
	req := &recordRequester{}
	far := HoverGeometry{ScreenW: 1920, ScreenH: 1080, CursorX: 100, CursorY: 100}
	s := NewPollingHoverSource(func() (HoverGeometry, error) { return far, nil }, req, 5*time.Millisecond, 220)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		_, hides := req.counts()
		return hides > 0
	}, time.Second, 5*time.Millisecond)
	shows, _ := req.counts()
	assert.Zero(t, shows)
}

func TestPollingHoverSourceSurvivesMetricsFailure(t *testing.T) {
	req := &recordRequester{}
	var mu sync.Mutex
	calls := 0
	metrics := func() (HoverGeometry, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		switch {
		case calls == 1:
			return HoverGeometry{}, errors.New("metrics unavailable")
		case calls == 2:
			panic("metrics panic")
		default:
			return HoverGeometry{ScreenW: 1920, ScreenH: 1080, CursorX: 1900, CursorY: 1060}, nil
		}
	}
	s := NewPollingHoverSource(metrics, req, 5*time.Millisecond, 220)
	require.NoError(t, s.Start())
	defer s.Stop()

	// 出错与 panic 的周期被吞掉，循环继续并最终发出 show 请求
	require.Eventually(t, func() bool {
		shows, _ := req.counts()
		return shows > 0
	}, time.Second, 5*time.Millisecond)
}

func TestPollingHoverSourceStopIdempotent(t *testing.T) {
	req := &recordRequester{}
	s := NewPollingHoverSource(func() (HoverGeometry, error) { return HoverGeometry{}, nil }, req, time.Millisecond, 220)
	require.NoError(t, s.Start())
	require.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}
