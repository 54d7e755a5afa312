package worker

import (
	"context"
	"errors"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/logger"
	"github.com/bgcollection/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 表单转发 / 确认邮件的队列消费服务
type Service struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	taskTypes []string
	queues    map[string]int
}

// NewService 创建队列消费服务，要求 queue.enabled
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	mux := asynq.NewServeMux()
	return &Service{
		server:    asynq.NewServer(opt, serverCfg),
		mux:       mux,
		taskTypes: consumer.Register(mux),
		queues:    serverCfg.Queues,
	}, nil
}

func (s *Service) Name() string { return "worker" }

// TaskTypes 已注册的任务类型
func (s *Service) TaskTypes() []string {
	if s == nil {
		return nil
	}
	return s.taskTypes
}

// Start 启动消费并阻塞到 ctx 结束；停机交给 Stop
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("worker not initialized")
	}
	logger.Infow("worker_start", "task_types", s.taskTypes, "queues", s.queues)
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的任务完成后退出
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		s.server.Shutdown()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warnw("worker_stop_timeout", "error", ctx.Err())
		return ctx.Err()
	}
}
