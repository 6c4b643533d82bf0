package sys_utils

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// CountProcessInstances 统计指定名称（忽略大小写）的运行进程数量
// 用于启动时的单实例检查：计数包含当前进程自身
func CountProcessInstances(name string) (int, error) {
	procs, err := process.Processes()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range procs {
		n, err := p.Name()
		if err != nil || n == "" {
			continue
		}
		if strings.EqualFold(n, name) {
			count++
		}
	}
	return count, nil
}
