package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternByNameUnknown(t *testing.T) {
	if _, err := PatternByName("spaceship-9000"); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if len(names) != len(patterns) {
		t.Fatalf("got %d names, want %d", len(names), len(patterns))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestStampWraps(t *testing.T) {
	g, err := FromLayout(make([]Cell, 16), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	block, _ := PatternByName("block")
	g.Stamp(block, 3, 3)
	assertRows(t, g,
		"#..#",
		"....",
		"....",
		"#..#",
	)
}

func TestOscillatorsHavePeriodTwo(t *testing.T) {
	for _, name := range []string{"blinker", "beacon", "toad"} {
		g, err := Seed(name, 6, 6, nil)
		if err != nil {
			t.Fatal(err)
		}
		start := g.Clone()
		g.Step()
		if g.Equal(start) {
			t.Errorf("%s did not change after one step", name)
		}
		g.Step()
		if !g.Equal(start) {
			t.Errorf("%s did not return after two steps", name)
		}
	}
}

func TestSeed(t *testing.T) {
	g, err := Seed("glider", 10, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 5 {
		t.Fatalf("glider population = %d", g.Population())
	}

	rng := rand.New(rand.NewPCG(1, 1))
	if _, err := Seed(RandomPattern, 10, 8, rng); err != nil {
		t.Fatal(err)
	}
	if _, err := Seed("block", 0, 8, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := Seed("nope", 10, 8, nil); err == nil {
		t.Fatal("unknown pattern seeded")
	}
}
