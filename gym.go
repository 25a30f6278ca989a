package gymscene

import "github.com/go-gl/mathgl/mgl32"

// Palette used by the gym layout.
var (
	colorFloor     = mgl32.Vec4{0.5, 0.52, 0.55, 1}
	colorWall      = mgl32.Vec4{0.6, 0.62, 0.65, 1}
	colorBisque    = mgl32.Vec4{1, 0.894, 0.769, 1}
	colorDarkSteel = mgl32.Vec4{0.15, 0.15, 0.15, 1}
	colorSteel     = mgl32.Vec4{0.25, 0.25, 0.25, 1}
	colorConcrete  = mgl32.Vec4{0.725, 0.725, 0.655, 1}
)

// GymObjects returns the complete gym layout in draw order: floor and far
// wall, two atlas-stone tables, the two stones, two lifting benches, the
// dumbbell rack, and eight globe dumbbells. Placement constants are the
// scene; they are not derived from anything.
func GymObjects() []Object {
	objs := []Object{
		{
			Name:        "floor",
			Shape:       ShapePlane,
			Transform:   at(25, 1, 15, 0, 0, 0, 0, 0, 0),
			Color:       colorFloor,
			MaterialTag: "stoneMAT",
			TextureTag:  "floor",
			UVScale:     mgl32.Vec2{2, 2},
		},
		{
			Name:        "far wall",
			Shape:       ShapePlane,
			Transform:   at(25, 1, 15, 90, 0, 0, 0, 15, -15),
			Color:       colorWall,
			MaterialTag: "stoneMAT",
			TextureTag:  "walls",
			UVScale:     mgl32.Vec2{3, 3},
		},
	}

	// Atlas stone tables. Each table section also draws the stone seat
	// "hole" of the opposite table, preserving the original draw order.
	objs = append(objs, stoneTable(stoneTableSpec{
		prefix: "close table",
		topY:   8, z: 6,
		legLen: 7.5, legY: 3.95, legZ: [2]float32{4.15, 7.9},
		baseZ: [2]float32{7.9, 4.125},
	})...)
	objs = append(objs, Object{
		Name:      "far table stone hole",
		Shape:     ShapeCylinder,
		Transform: at(1, 0.1, 1, 0, 0, 0, 16, 7.155, -3),
		Color:     colorDarkSteel,
	})
	objs = append(objs, stoneTable(stoneTableSpec{
		prefix: "far table",
		topY:   7, z: -3,
		legLen: 6.5, legY: 3.125, legZ: [2]float32{-4.925, -1.075},
		baseZ: [2]float32{-4.925, -1.075},
	})...)
	objs = append(objs, Object{
		Name:      "close table stone hole",
		Shape:     ShapeCylinder,
		Transform: at(1, 0.1, 1, 0, 0, 0, 16, 8.155, 6),
		Color:     colorDarkSteel,
	})

	// Atlas stones on the floor in front of their tables.
	objs = append(objs,
		atlasStone("far atlas stone", 2.25, 2.35, -3),
		atlasStone("close atlas stone", 1.75, 1.95, 6),
	)

	// Lifting benches.
	objs = append(objs, bench("left bench", -15.25)...)
	objs = append(objs, bench("right bench", -5.25)...)

	// Dumbbell rack: long holder bar on three A-frame bays.
	objs = append(objs, Object{
		Name:        "rack holder bar",
		Shape:       ShapeBox,
		Transform:   at(17.5, 0.8, 0.4, 90, 0, 0, -10.25, 5.345, -10.15),
		Color:       colorSteel,
		MaterialTag: "metalMAT",
		TextureTag:  "metal",
		UVScale:     mgl32.Vec2{35, 35},
	})
	objs = append(objs, rackBay("rack left bay", -18.6)...)
	objs = append(objs, rackBay("rack middle bay", -10.25)...)
	objs = append(objs, rackBay("rack right bay", -1.9)...)

	// York globe dumbbells: four pairs racked, one pair on the floor.
	objs = append(objs, dumbbell("65lb left", -17.5, 5.75, -10.75, 0.75, -11.45, -8.85)...)
	objs = append(objs, dumbbell("65lb right", -15.75, 5.75, -10.75, 0.75, -11.45, -8.85)...)
	objs = append(objs, dumbbell("95lb left", -13.5, 5.75, -10.75, 0.875, -11.55, -8.75)...)
	objs = append(objs, dumbbell("95lb right", -11.5, 5.75, -10.75, 0.875, -11.55, -8.75)...)
	objs = append(objs, dumbbell("125lb left", -8.85, 5.75, -10.75, 1, -11.65, -8.65)...)
	objs = append(objs, dumbbell("125lb right", -6.85, 5.75, -10.75, 1, -11.65, -8.65)...)
	objs = append(objs, dumbbell("155lb left", -9.35, 1.15, 1.55, 1.2, 3.875, 0.475)...)
	objs = append(objs, dumbbell("155lb right", -1.15, 1.15, 1.55, 1.2, 3.875, 0.475)...)

	return objs
}

type stoneTableSpec struct {
	prefix string
	topY   float32 // wood top height; metal top sits 0.5 below
	z      float32
	legLen float32
	legY   float32
	legZ   [2]float32
	baseZ  [2]float32
}

func stoneTable(s stoneTableSpec) []Object {
	steel := func(name string, tr Transform) Object {
		return Object{
			Name:        s.prefix + " " + name,
			Shape:       ShapeBox,
			Transform:   tr,
			Color:       colorDarkSteel,
			MaterialTag: "metalMAT",
			TextureTag:  "metal",
		}
	}
	return []Object{
		{
			Name:        s.prefix + " wood top",
			Shape:       ShapeBox,
			Transform:   at(4.35, 0.5, 4.35, 0, 0, 0, 16, s.topY, s.z),
			Color:       colorBisque,
			MaterialTag: "woodMAT",
			TextureTag:  "wood",
			UVScale:     mgl32.Vec2{5, 77},
		},
		steel("metal top", at(4.35, 0.5, 4.35, 0, 0, 0, 16, s.topY-0.5, s.z)),
		steel("front leg", at(0.5, 0.5, s.legLen, 90, 0, 0, 16.5, s.legY, s.legZ[0])),
		steel("rear leg", at(0.5, 0.5, s.legLen, 90, 0, 0, 16.5, s.legY, s.legZ[1])),
		steel("floor base", at(0.5, 0.5, 4.5, 0, 90, 0, 16.25, 0.25, s.baseZ[0])),
		steel("floor base 2", at(0.5, 0.5, 4.5, 0, 90, 0, 16.25, 0.25, s.baseZ[1])),
		steel("rear cross support", at(0.5, 0.5, 4.5, 0, 0, 90, 18.25, 0.25, s.z)),
	}
}

func atlasStone(name string, size, y, z float32) Object {
	return Object{
		Name:        name,
		Shape:       ShapeSphere,
		Transform:   at(size, size, size, 0, 0, 0, 10, y, z),
		Color:       colorConcrete,
		MaterialTag: "stoneMAT",
		TextureTag:  "atlas-stone",
		UVScale:     mgl32.Vec2{2, 2},
	}
}

func bench(prefix string, x float32) []Object {
	steel := func(name string, tr Transform) Object {
		return Object{
			Name:        prefix + " " + name,
			Shape:       ShapeBox,
			Transform:   tr,
			Color:       colorSteel,
			MaterialTag: "metalMAT",
			TextureTag:  "metal",
			UVScale:     mgl32.Vec2{35, 35},
		}
	}
	return []Object{
		{
			Name:        prefix + " seat platform",
			Shape:       ShapeBox,
			Transform:   at(0.5, 2.5, 10.75, 0, 0, 90, x, 3.025, 3),
			Color:       colorDarkSteel,
			MaterialTag: "rubberMAT",
			TextureTag:  "bench",
			UVScale:     mgl32.Vec2{0.75, 0.75},
		},
		steel("far support bar", at(1.075, 0.5, 3.5, 0, 90, 0, x, 0.25, -1.25)),
		steel("far support pillar", at(1.075, 1, 2.85, 90, 0, 0, x, 1.345, -1.25)),
		steel("near support bar", at(1.075, 0.5, 3.5, 0, 90, 0, x, 0.25, 7.15)),
		steel("near support pillar", at(1.075, 1, 2.85, 90, 0, 0, x, 1.345, 7.15)),
	}
}

func rackBay(prefix string, x float32) []Object {
	steel := func(name string, tr Transform) Object {
		return Object{
			Name:        prefix + " " + name,
			Shape:       ShapeBox,
			Transform:   tr,
			Color:       colorSteel,
			MaterialTag: "metalMAT",
			TextureTag:  "metal",
			UVScale:     mgl32.Vec2{35, 35},
		}
	}
	return []Object{
		steel("cross bar", at(0.8, 3, 1, 90, 0, 0, x, 5, -10.15)),
		steel("close support", at(0.8, 6, 1, -20, 0, 0, x, 2.345, -8.1)),
		steel("far support", at(0.8, 6, 1, 20, 0, 0, x, 2.345, -12.15)),
	}
}

// dumbbell lays out one globe dumbbell: a grip cylinder between two weight
// spheres, all steel with the dumbbell texture.
func dumbbell(prefix string, x, y, gripZ, globe, rearZ, frontZ float32) []Object {
	part := func(name string, shape Shape, tr Transform) Object {
		return Object{
			Name:        prefix + " " + name,
			Shape:       shape,
			Transform:   tr,
			Color:       colorSteel,
			MaterialTag: "metalMAT",
			TextureTag:  "dbell",
			UVScale:     mgl32.Vec2{1, 1},
		}
	}
	return []Object{
		part("grip", ShapeCylinder, at(0.2, 1.2, 0.2, 90, 0, 0, x, y, gripZ)),
		part("rear globe", ShapeSphere, at(globe, globe, globe, 0, 0, 0, x, y, rearZ)),
		part("front globe", ShapeSphere, at(globe, globe, globe, 0, 0, 0, x, y, frontZ)),
	}
}
