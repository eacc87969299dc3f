package sensorflow

import "context"

// forwardFailure sends a relabelled source error downstream and keeps
// draining the input so the upstream goroutine can finish. The calling stage
// must return afterwards: a source error is terminal.
func forwardFailure[In, Out any](ctx context.Context, out chan<- Result[Out], in <-chan Result[In], failed Result[In], name string) {
	select {
	case out <- relabel[In, Out](failed, name):
	case <-ctx.Done():
		return
	}
	go drain(ctx, in)
}

func drain[T any](ctx context.Context, in <-chan Result[T]) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-in:
			if !ok {
				return
			}
		}
	}
}
