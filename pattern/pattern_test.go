package pattern

import (
	"math"
	"testing"
)

const eps = 1e-9

func angleEq(a, b float64) bool {
	return math.Abs(Normalize(a-b)) < 1e-6
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{270, -90},
		{-270, 90},
		{360, 0},
		{540, -180},
		{-90, -90},
		{179.5, 179.5},
	}
	for _, c := range cases {
		if got := Normalize(c.in); math.Abs(got-c.want) > eps {
			t.Errorf("Normalize(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestShortestArc(t *testing.T) {
	cases := []struct {
		from, to float64
		want     float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{170, -170, 20},
		{-170, 170, -20},
		{0, -180, -180},
	}
	for _, c := range cases {
		if got := ShortestArc(c.from, c.to); math.Abs(got-c.want) > eps {
			t.Errorf("ShortestArc(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, -90, 135, -179} {
		v := FromAngle(deg, 100)
		if !angleEq(Angle(v), deg) {
			t.Errorf("Angle(FromAngle(%v)) = %v", deg, Angle(v))
		}
		if math.Abs(Speed(v)-100) > 1e-6 {
			t.Errorf("Speed(FromAngle(%v)) = %v", deg, Speed(v))
		}
	}
}

func TestNWay(t *testing.T) {
	t.Run("single_fires_on_center", func(t *testing.T) {
		vs := NWay(1, 90, 45, 100)
		if len(vs) != 1 || !angleEq(Angle(vs[0]), 45) {
			t.Fatalf("got %v", vs)
		}
	})

	t.Run("odd_count_middle_on_center", func(t *testing.T) {
		vs := NWay(5, 80, -90, 100)
		if len(vs) != 5 {
			t.Fatalf("count = %d", len(vs))
		}
		if !angleEq(Angle(vs[2]), -90) {
			t.Fatalf("middle shot off center: %v", Angle(vs[2]))
		}
		// Spacing is spread/(count-1).
		for i := 1; i < len(vs); i++ {
			step := ShortestArc(Angle(vs[i-1]), Angle(vs[i]))
			if math.Abs(step-20) > 1e-6 {
				t.Fatalf("step %d = %v, want 20", i, step)
			}
		}
	})

	t.Run("even_count_straddles_center", func(t *testing.T) {
		vs := NWay(4, 60, 0, 100)
		if !angleEq(Angle(vs[0]), -30) || !angleEq(Angle(vs[3]), 30) {
			t.Fatalf("edges %v %v", Angle(vs[0]), Angle(vs[3]))
		}
		mid := ShortestArc(Angle(vs[1]), Angle(vs[2]))
		if math.Abs(mid-20) > 1e-6 {
			t.Fatalf("inner pair step = %v", mid)
		}
	})

	t.Run("zero_count", func(t *testing.T) {
		if vs := NWay(0, 60, 0, 100); vs != nil {
			t.Fatalf("got %v", vs)
		}
	})
}

func TestRing(t *testing.T) {
	vs := Ring(8, 10, 100)
	if len(vs) != 8 {
		t.Fatalf("count = %d", len(vs))
	}
	for i := range vs {
		want := 10 + float64(i)*45
		if !angleEq(Angle(vs[i]), want) {
			t.Fatalf("ring[%d] = %v, want %v", i, Angle(vs[i]), want)
		}
	}
}

func TestSpiralEmitterAdvances(t *testing.T) {
	em := &SpiralEmitter{Angle: 0, Step: 15}
	first := em.Next(4, 100)
	second := em.Next(4, 100)
	if !angleEq(Angle(first[0]), 0) {
		t.Fatalf("first ring start = %v", Angle(first[0]))
	}
	if !angleEq(Angle(second[0]), 15) {
		t.Fatalf("second ring start = %v", Angle(second[0]))
	}
}

func TestAimed(t *testing.T) {
	v := Aimed(0, 0, 0, 10, 50)
	if math.Abs(v.X) > 1e-6 || math.Abs(v.Y-50) > 1e-6 {
		t.Fatalf("aiming straight down got %v", v)
	}
}
