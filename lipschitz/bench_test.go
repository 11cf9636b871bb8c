package lipschitz_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/lipschitz"
	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

// sinks to defeat dead-code elimination
var (
	sinkT *tensor.Tensor
	sinkM matrix.Matrix
	sinkF float64
)

// benchKernels are dense (in, out) and conv (kh, kw, in, out) shapes.
var benchKernels = [][]int{{64, 32}, {128, 128}, {3, 3, 32, 64}}

func BenchmarkProjectKernel(b *testing.B) {
	for _, be := range []backend.Backend{backend.Native{}, backend.Gonum{}} {
		for _, shape := range benchKernels {
			b.Run(fmt.Sprintf("%s/%v", be.Name(), shape), func(b *testing.B) {
				kernel := randTensor(b, 1, shape...)
				_, u, _, err := lipschitz.ProjectKernel(kernel, nil, 1, lipschitz.DefaultNiterSpectral, 0, lipschitz.WithBackend(be))
				if err != nil {
					b.Fatal(err)
				}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					w, uu, s, err := lipschitz.ProjectKernel(kernel, u, 1,
						lipschitz.DefaultNiterSpectral, lipschitz.DefaultNiterBjorck, lipschitz.WithBackend(be))
					if err != nil {
						b.Fatal(err)
					}
					sinkT, sinkM, sinkF = w, uu, s
				}
			})
		}
	}
}

func BenchmarkPowerIteration(b *testing.B) {
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			w, err := tensor.Flatten2D(randTensor(b, 2, n, n))
			if err != nil {
				b.Fatal(err)
			}
			u0, _ := matrix.NewOnes(1, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u, _, err := lipschitz.PowerIteration(w, u0, lipschitz.DefaultNiterSpectral)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = u
			}
		})
	}
}
