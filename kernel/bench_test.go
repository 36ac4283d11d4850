package kernel_test

import (
	"testing"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/kernel"
)

// addChain builds x0 free and xi = x(i-1) + x(i-1) for i in 1..n.
func addChain(b *testing.B, n int) (*kernel.Construction, kernel.NodeID) {
	b.Helper()
	c := kernel.New()
	root, err := c.CreateFreeNode(kernel.Number(0))
	if err != nil {
		b.Fatal(err)
	}
	prev := root
	for i := 0; i < n; i++ {
		_, outs, err := c.CreateAlgorithm(algos.Add{}, []kernel.NodeID{prev, prev})
		if err != nil {
			b.Fatal(err)
		}
		prev = outs[0]
	}

	return c, root
}

// BenchmarkPropagation_Chain1000 measures one pass through a linear chain;
// every algorithm recomputes exactly once.
func BenchmarkPropagation_Chain1000(b *testing.B) {
	c, root := addChain(b, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := c.SetValue(root, kernel.Number(float64(i%7))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPropagation_Fan1000 updates one free point read by 1000 rays.
func BenchmarkPropagation_Fan1000(b *testing.B) {
	c := kernel.New()
	a, _ := c.CreateFreeNode(kernel.NewPoint(0, 0))
	for i := 0; i < 1000; i++ {
		p, _ := c.CreateFreeNode(kernel.NewPoint(float64(i+1), 1))
		if _, _, err := c.CreateAlgorithm(algos.JoinPointsRay{}, []kernel.NodeID{a, p}); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := c.SetValue(a, kernel.NewPoint(float64(i%5), 0)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPropagation_Pruned stops after the first algorithm because its
// output does not change.
func BenchmarkPropagation_Pruned(b *testing.B) {
	c := kernel.New(kernel.WithConfig(kernel.Config{PruneUnchanged: true}))
	root, _ := c.CreateFreeNode(kernel.Number(1))
	_, outs, err := c.CreateAlgorithm(algos.Multiply{}, []kernel.NodeID{root, root})
	if err != nil {
		b.Fatal(err)
	}
	prev := outs[0]
	for i := 0; i < 1000; i++ {
		_, outs, err := c.CreateAlgorithm(algos.Add{}, []kernel.NodeID{prev, prev})
		if err != nil {
			b.Fatal(err)
		}
		prev = outs[0]
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v := kernel.Number(1)
		if i%2 == 1 {
			v = -1
		}
		if err := c.SetValue(root, v); err != nil {
			b.Fatal(err)
		}
	}
}
