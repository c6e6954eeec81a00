// Package closer collects shutdown hooks and runs them in reverse
// registration order.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type closeFn struct {
	name string
	fn   func(context.Context) error
}

type Closer struct {
	mu     sync.Mutex
	funcs  []closeFn
	done   bool
	logger Logger
}

var global = New()

func New() *Closer { return &Closer{logger: nopLogger{}} }

func SetLogger(l Logger)                                    { global.SetLogger(l) }
func AddNamed(name string, fn func(context.Context) error) { global.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                    { return global.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l == nil {
		l = nopLogger{}
	}
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, closeFn{name: name, fn: fn})
}

// CloseAll runs every hook once, newest first. Later calls are no-ops.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return nil
	}
	c.done = true
	funcs := c.funcs
	c.funcs = nil
	log := c.logger
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		if err := f.fn(ctx); err != nil {
			log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.Info(ctx, "closed", zap.String("name", f.name))
	}

	return errors.Join(errs...)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
