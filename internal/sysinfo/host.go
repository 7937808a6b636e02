package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo 运行环境的基本信息，启动时写入日志
type HostInfo struct {
	Hostname     string `json:"hostname"`
	OS           string `json:"os"`
	Architecture string `json:"architecture"`
	Platform     string `json:"platform"`
	Kernel       string `json:"kernel"`
}

// Host 收集主机信息
func Host() (*HostInfo, error) {
	hostInfo, err := host.Info()
	if err != nil {
		return nil, err
	}

	return &HostInfo{
		Hostname:     hostInfo.Hostname,
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		Platform:     hostInfo.Platform,
		Kernel:       hostInfo.KernelVersion,
	}, nil
}

// Fields 转换为日志字段
func (h *HostInfo) Fields() map[string]interface{} {
	return map[string]interface{}{
		"hostname":     h.Hostname,
		"os":           h.OS,
		"architecture": h.Architecture,
		"platform":     h.Platform,
		"kernel":       h.Kernel,
	}
}
