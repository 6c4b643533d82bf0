package win

import (
	"os"
	"strings"

	"kr-calendar/config"
	"kr-calendar/constants"
	"kr-calendar/sys_utils"
)

// InitAutostartRegistration 根据配置同步应用的开机自启注册状态
// - 开启时：若未注册或注册路径与当前可执行文件不一致，则重新写入注册表
// - 关闭时：若已注册则移除注册表项
func InitAutostartRegistration() {
	app := constants.TextAppTitle
	if config.GetAutostartEnabled() {
		exe, _ := os.Executable()
		ok, v, err := sys_utils.IsAutoStartRegistered(app)
		if err == nil {
			if !ok || strings.TrimSpace(v) != exe {
				_ = sys_utils.EnableAutoStart(app, exe)
			}
		}
	} else {
		ok, _, err := sys_utils.IsAutoStartRegistered(app)
		if err == nil && ok {
			_ = sys_utils.DisableAutoStart(app)
		}
	}
}
