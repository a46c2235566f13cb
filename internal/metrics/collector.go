package metrics

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// SystemCollector periodically publishes uptime and memory gauges.
type SystemCollector struct {
	metrics   *Metrics
	logger    *zap.Logger
	startTime time.Time
	ticker    *time.Ticker
	stopCh    chan struct{}
}

func NewSystemCollector(metrics *Metrics, logger *zap.Logger) *SystemCollector {
	return &SystemCollector{
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
	}
}

func (sc *SystemCollector) Start(interval time.Duration) {
	sc.ticker = time.NewTicker(interval)
	go sc.collectLoop()
	sc.logger.Info("System metrics collector started", zap.Duration("interval", interval))
}

func (sc *SystemCollector) Stop() {
	if sc.ticker != nil {
		sc.ticker.Stop()
	}
	close(sc.stopCh)
	sc.logger.Info("System metrics collector stopped")
}

func (sc *SystemCollector) collectLoop() {
	sc.collect()

	for {
		select {
		case <-sc.ticker.C:
			sc.collect()
		case <-sc.stopCh:
			return
		}
	}
}

func (sc *SystemCollector) collect() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	sc.metrics.UpdateSystemMetrics(time.Since(sc.startTime), &memStats)
}
