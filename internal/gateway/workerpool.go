package gateway

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool reparte las tareas de la pasarela entre un número fijo de
// goroutines; cada pago pendiente se procesa como una tarea.
type WorkerPool struct {
	tareas chan Task
	cierre sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tareas: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tareas {
		if err := task(); err != nil {
			zap.L().Error("Gateway task failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tareas <- task:
		return nil
	}
}

// Close es idempotente; las tareas ya encoladas terminan de drenarse.
func (wp *WorkerPool) Close() {
	wp.cierre.Do(func() { close(wp.tareas) })
}
