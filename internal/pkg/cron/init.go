package cron

import log "log/slog"

// InitCron 注册站点地图等定时任务并启动调度器
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
