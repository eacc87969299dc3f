package sensorflow

import "context"

// ForEach calls fn synchronously for every value of in, in emission order.
//
// It returns nil when in is exhausted, the first error carried by the
// stream (a poisoned bridge, for example), or ctx.Err() when cancelled.
// fn has no return value; it communicates only through side effects.
//
// Example:
//
//	err := sensorflow.ForEach(ctx, presses, func(bool) {
//		log.Println("pressed")
//	})
//	if errors.Is(err, sensorflow.ErrPoisoned) {
//		// sampling can no longer be trusted
//	}
func ForEach[T any](ctx context.Context, in <-chan Result[T], fn func(T)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case item, ok := <-in:
			if !ok {
				return nil
			}
			if item.IsError() {
				go drain(ctx, in)
				return item.Error()
			}
			fn(item.Value())
		}
	}
}
