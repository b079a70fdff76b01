package mandel

// Region is a rectangle of the complex plane in min/max form, the exchange
// format between the landmark table, the shells and Viewport.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Classic landmarks of the Mandelbrot set, reachable from the explorer's
// number keys and the render CLI's --region flag.
var (
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

// Landmark pairs a region with the name it is addressed by.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks lists the named regions in a stable order (key 1 = first).
var Landmarks = []Landmark{
	{"seahorse-valley", SeahorseValley},
	{"elephant-valley", ElephantValley},
	{"spiral-minibrot", SpiralMinibrot},
	{"triple-spiral", TripleSpiral},
	{"valley-of-the-dragon", ValleyOfTheDragon},
	{"minibrot-in-mini-spiral", MinibrotInMiniSpiral},
}

// LandmarkByName looks a landmark region up by its flag name.
func LandmarkByName(name string) (Region, bool) {
	for _, lm := range Landmarks {
		if lm.Name == name {
			return lm.Region, true
		}
	}
	return Region{}, false
}
