package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

// ExampleConstruction_CreatePointOnPath builds a ray through two points,
// drags a point behind its start and turns the ray.
func ExampleConstruction_CreatePointOnPath() {
	c := kernel.New()
	a, _ := c.CreateFreeNode(kernel.NewPoint(0, 0))
	b, _ := c.CreateFreeNode(kernel.NewPoint(1, 0))
	_, outs, _ := c.CreateAlgorithm(algos.JoinPointsRay{}, []kernel.NodeID{a, b})

	p, _ := c.CreatePointOnPath(outs[0], geom.Point(-3, 0))
	el, _ := c.Element(p)
	t, _ := c.Parameter(p)
	fmt.Printf("P = (%g, %g), t = %g\n", el.Value.(kernel.Point).X, el.Value.(kernel.Point).Y, t)

	_ = c.SetValue(b, kernel.NewPoint(0, 1))
	el, _ = c.Element(p)
	fmt.Printf("P = (%g, %g)\n", el.Value.(kernel.Point).X, el.Value.(kernel.Point).Y)
	// Output:
	// P = (0, 0), t = 0
	// P = (0, 0)
}

// ExampleConstruction_Redefine swaps an addition for a subtraction.
func ExampleConstruction_Redefine() {
	c := kernel.New()
	a, _ := c.CreateFreeNode(kernel.Number(5))
	b, _ := c.CreateFreeNode(kernel.Number(3))
	_, cs, _ := c.CreateAlgorithm(algos.Add{}, []kernel.NodeID{a, b}, kernel.WithLabels("C"))
	_, ds, _ := c.CreateAlgorithm(algos.Multiply{}, []kernel.NodeID{cs[0], a}, kernel.WithLabels("D"))

	_ = c.Redefine(cs[0], algos.Subtract{}, []kernel.NodeID{a, b}, nil)
	d, _ := c.Element(ds[0])
	fmt.Println("D =", d.Value)
	// Output:
	// D = 10
}
