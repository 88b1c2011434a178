package services

import (
  "context"
  "time"

  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/utils"
)

// ListRefreshScheduler periodically sweeps brand lists whose refresh window
// has elapsed. It stays disabled unless LIST_REFRESH_ENABLED is set so
// deployments opt in to unattended provider spend.
type ListRefreshScheduler struct {
  log      *logger.Logger
  listgen  ListGenerationService
  enabled  bool
  interval time.Duration
}

func NewListRefreshScheduler(baseLog *logger.Logger, listgen ListGenerationService) *ListRefreshScheduler {
  intervalSeconds := utils.GetEnvAsInt("LIST_REFRESH_INTERVAL_SECONDS", 21600, baseLog)
  if intervalSeconds <= 0 {
    intervalSeconds = 21600
  }
  return &ListRefreshScheduler{
    log:      baseLog.With("component", "ListRefreshScheduler"),
    listgen:  listgen,
    enabled:  utils.GetEnvAsBool("LIST_REFRESH_ENABLED", false, baseLog),
    interval: time.Duration(intervalSeconds) * time.Second,
  }
}

func (s *ListRefreshScheduler) Start(ctx context.Context) {
  if !s.enabled {
    s.log.Info("List refresh scheduler disabled")
    return
  }

  s.log.Info("List refresh scheduler started", "interval", s.interval.String())
  go func() {
    ticker := time.NewTicker(s.interval)
    defer ticker.Stop()
    for {
      select {
      case <-ctx.Done():
        s.log.Info("List refresh scheduler stopped")
        return
      case <-ticker.C:
        if err := s.listgen.RefreshExpiredLists(ctx); err != nil {
          s.log.Warn("Expired list sweep failed", "error", err)
        }
      }
    }
  }()
}
