package cluster

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/spatial"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

func twoGroups(rng *rand.Rand) []*model.Unit {
	var units []*model.Unit
	id := 1
	add := func(x0, y0 int) {
		n := 20 + rng.IntN(21)
		for range n {
			units = append(units, &model.Unit{
				ID: id, Type: unittype.ZergZergling, Relation: model.Me, HP: 35,
				X: x0 + rng.IntN(300), Y: y0 + rng.IntN(300),
			})
			id++
		}
	}
	add(100, 0)
	add(300, 1000)
	return units
}

// partition renders clusters as a canonical string of sorted id sets.
func partition(cs []Cluster) string {
	var parts []string
	for _, c := range cs {
		var ids []int
		for _, u := range c.Units {
			ids = append(ids, u.ID)
		}
		sort.Ints(ids)
		parts = append(parts, fmt.Sprint(ids))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func TestSeparatedGroups(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 1000 {
		units := twoGroups(rng)
		cs := DBSCAN(spatial.New(units), 400, 4)
		if len(cs) != 2 {
			t.Fatalf("iteration %d: %d clusters, want 2", i, len(cs))
		}
	}
}

func TestEveryUnitInExactlyOneCluster(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		var units []*model.Unit
		for id := 1; id <= 60; id++ {
			units = append(units, &model.Unit{ID: id, Type: unittype.TerranMarine, HP: 40, X: rng.IntN(3000), Y: rng.IntN(3000)})
		}
		seen := make(map[int]int)
		for _, c := range DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts) {
			if len(c.Units) == 0 {
				t.Fatal("empty cluster")
			}
			for _, u := range c.Units {
				seen[u.ID]++
			}
		}
		for _, u := range units {
			if seen[u.ID] != 1 {
				t.Fatalf("unit %d appears %d times", u.ID, seen[u.ID])
			}
		}
	}
}

func TestPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for range 50 {
		var units []*model.Unit
		for id := 1; id <= 50; id++ {
			units = append(units, &model.Unit{ID: id, Type: unittype.ZergHydralisk, HP: 80, X: rng.IntN(2500), Y: rng.IntN(2500)})
		}
		want := partition(DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts))
		rng.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })
		if got := partition(DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts)); got != want {
			t.Fatalf("partition changed after shuffle:\n got %s\nwant %s", got, want)
		}
	}
}

func TestNoiseBecomesSingleton(t *testing.T) {
	units := []*model.Unit{
		{ID: 1, Type: unittype.ZergZergling, HP: 35, X: 100, Y: 100},
		{ID: 2, Type: unittype.ZergZergling, HP: 35, X: 120, Y: 100},
		{ID: 3, Type: unittype.ZergZergling, HP: 35, X: 140, Y: 100},
		{ID: 4, Type: unittype.ZergZergling, HP: 35, X: 160, Y: 100},
		{ID: 5, Type: unittype.ZergZergling, HP: 35, X: 3000, Y: 3000},
	}
	cs := DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts)
	if len(cs) != 2 {
		t.Fatalf("%d clusters, want 2", len(cs))
	}
	if len(cs[0].Units) != 4 || len(cs[1].Units) != 1 || cs[1].Units[0].ID != 5 {
		t.Errorf("unexpected partition %s", partition(cs))
	}
	if !slices.IsSortedFunc(cs[0].Units, func(a, b *model.Unit) int { return a.X - b.X }) {
		t.Error("cluster units not ordered by x")
	}
}

func TestSlope(t *testing.T) {
	var units []*model.Unit
	for i := range 5 {
		units = append(units, &model.Unit{ID: i + 1, Type: unittype.TerranMarine, Relation: model.Me, HP: 40, X: 100 + i*20, Y: 100 + i*40})
	}
	units = append(units, &model.Unit{ID: 10, Type: unittype.TerranMarine, Relation: model.Enemy, HP: 40, X: 150, Y: 0})

	cs := DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts)
	if len(cs) != 1 {
		t.Fatalf("%d clusters, want 1", len(cs))
	}
	if math.Abs(cs[0].B-2) > 1e-9 {
		t.Errorf("B = %v, want 2", cs[0].B)
	}
	if len(cs[0].Mine()) != 5 || len(cs[0].Enemies()) != 1 {
		t.Error("Mine/Enemies split wrong")
	}
}

func TestSlopeWithoutOwnUnits(t *testing.T) {
	units := []*model.Unit{{ID: 1, Type: unittype.TerranMarine, Relation: model.Enemy, HP: 40, X: 5, Y: 5}}
	cs := DBSCAN(spatial.New(units), DefaultEps, DefaultMinPts)
	if cs[0].B != 0 {
		t.Errorf("B = %v, want 0", cs[0].B)
	}
}
