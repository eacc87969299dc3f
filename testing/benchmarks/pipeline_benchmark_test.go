package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/sensorflow"
)

func squareWave(n int) <-chan sensorflow.Result[bool] {
	input := make(chan sensorflow.Result[bool], n)
	for j := 0; j < n; j++ {
		input <- sensorflow.NewSuccess(j%4 < 2)
	}
	close(input)
	return input
}

// BenchmarkPipeline_Window benchmarks pairing consecutive values.
func BenchmarkPipeline_Window(b *testing.B) {
	ctx := context.Background()

	input := make(chan sensorflow.Result[int], b.N)
	for i := 0; i < b.N; i++ {
		input <- sensorflow.NewSuccess(i)
	}
	close(input)

	output := sensorflow.NewWindow[int]().Process(ctx, input)

	b.ResetTimer()

	for range output {
	}
}

// BenchmarkPipeline_RisingEdge benchmarks Window->Filter->Mapper edge detection.
func BenchmarkPipeline_RisingEdge(b *testing.B) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		input := squareWave(1000)
		edges := sensorflow.NewRisingEdge().Process(ctx, input)
		b.StartTimer()

		for range edges {
		}
	}
}

// BenchmarkPipeline_ChordEdge benchmarks Or->RisingEdge over two inputs.
func BenchmarkPipeline_ChordEdge(b *testing.B) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		held := sensorflow.NewOr().Process(ctx, squareWave(1000), squareWave(1000))
		edges := sensorflow.NewRisingEdge().Process(ctx, held)
		b.StartTimer()

		for range edges {
		}
	}
}

// BenchmarkPipeline_ErrorHandling benchmarks terminal error propagation
// through a three-stage pipeline.
func BenchmarkPipeline_ErrorHandling(b *testing.B) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()

		input := make(chan sensorflow.Result[bool], 100)
		for j := 0; j < 99; j++ {
			input <- sensorflow.NewSuccess(j%2 == 0)
		}
		input <- sensorflow.NewError(false, sensorflow.ErrPoisoned, "bench")
		close(input)

		output := sensorflow.NewNot().Process(ctx, sensorflow.NewRisingEdge().Process(ctx, input))

		b.StartTimer()

		_ = sensorflow.ForEach(ctx, output, func(bool) {})
	}
}
