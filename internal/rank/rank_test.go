package rank_test

import (
	"testing"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/rank"
)

func TestTable_SortedAndContiguous(t *testing.T) {
	tiers := rank.Tiers()

	if len(tiers) != 22 {
		t.Fatalf("Expected 22 tiers, got %d", len(tiers))
	}
	if tiers[0].MinPoints != 0 {
		t.Errorf("First tier must start at 0, got %d", tiers[0].MinPoints)
	}

	for i := 0; i < len(tiers)-1; i++ {
		if tiers[i].MaxPoints != tiers[i+1].MinPoints {
			t.Errorf("Gap between %s %d (max=%d) and %s %d (min=%d)",
				tiers[i].Name, tiers[i].Division, tiers[i].MaxPoints,
				tiers[i+1].Name, tiers[i+1].Division, tiers[i+1].MinPoints)
		}
	}

	last := tiers[len(tiers)-1]
	if last.Name != "Legend" || last.Division != 0 {
		t.Errorf("Last tier must be Legend without division, got %s %d", last.Name, last.Division)
	}
	if last.MinPoints != rank.MaxPoints {
		t.Errorf("Legend must start at %d, got %d", rank.MaxPoints, last.MinPoints)
	}
}

func TestForPoints_ZeroIsBronzeOne(t *testing.T) {
	info := rank.ForPoints(0)

	if info.Current.Name != "Bronze" || info.Current.Division != 1 {
		t.Errorf("Expected Bronze 1, got %s %d", info.Current.Name, info.Current.Division)
	}
	if info.ProgressPercent != 0 {
		t.Errorf("Expected progress 0, got %f", info.ProgressPercent)
	}
	if info.Next == nil || info.Next.Division != 2 {
		t.Errorf("Expected next tier Bronze 2, got %+v", info.Next)
	}
}

func TestForPoints_ExactMinPointsSelectsThatTier(t *testing.T) {
	for _, tier := range rank.Tiers() {
		info := rank.ForPoints(tier.MinPoints)
		if info.Current.Name != tier.Name || info.Current.Division != tier.Division {
			t.Errorf("At %d points: expected %s %d, got %s %d",
				tier.MinPoints, tier.Name, tier.Division,
				info.Current.Name, info.Current.Division)
		}
	}
}

func TestForPoints_LastPointOfRangeStaysInTier(t *testing.T) {
	// 199 est le dernier point de Silver 1 [150,199] : il ne doit pas basculer
	// dans Silver 2
	info := rank.ForPoints(199)

	if info.Current.Name != "Silver" || info.Current.Division != 1 {
		t.Errorf("Expected Silver 1 at 199 points, got %s %d", info.Current.Name, info.Current.Division)
	}
	if info.PointsToNext != 1 {
		t.Errorf("Expected pointsToNext=1, got %d", info.PointsToNext)
	}
}

func TestForPoints_MaxedOut(t *testing.T) {
	for _, points := range []int{2400, 2401, 10000} {
		info := rank.ForPoints(points)

		if info.Current.Name != "Legend" {
			t.Errorf("At %d points: expected Legend, got %s", points, info.Current.Name)
		}
		if info.Next != nil {
			t.Errorf("At %d points: expected next=nil, got %+v", points, info.Next)
		}
		if info.ProgressPercent != 100 {
			t.Errorf("At %d points: expected progress 100, got %f", points, info.ProgressPercent)
		}
		if info.PointsToNext != 0 {
			t.Errorf("At %d points: expected pointsToNext 0, got %d", points, info.PointsToNext)
		}
	}
}

func TestForPoints_ProgressAlwaysInRange(t *testing.T) {
	for points := 0; points <= rank.MaxPoints+100; points++ {
		info := rank.ForPoints(points)
		if info.ProgressPercent < 0 || info.ProgressPercent > 100 {
			t.Fatalf("At %d points: progress %f out of [0,100]", points, info.ProgressPercent)
		}
	}
}

func TestForPoints_RankNeverDecreases(t *testing.T) {
	prevMin := -1
	for points := 0; points <= rank.MaxPoints+100; points++ {
		info := rank.ForPoints(points)
		if info.Current.MinPoints < prevMin {
			t.Fatalf("At %d points: rank dropped (minPoints %d < previous %d)",
				points, info.Current.MinPoints, prevMin)
		}
		prevMin = info.Current.MinPoints
	}
}

func TestForPoints_Scenario175IsSilverOne(t *testing.T) {
	// 145 points + journée complète (5 tâches = 30 pts) => 175
	info := rank.ForPoints(175)

	if info.Current.Name != "Silver" || info.Current.Division != 1 {
		t.Errorf("Expected Silver 1, got %s %d", info.Current.Name, info.Current.Division)
	}
	if info.PointsToNext != 25 {
		t.Errorf("Expected pointsToNext=25 (200-175), got %d", info.PointsToNext)
	}
	if info.ProgressPercent != 50 {
		t.Errorf("Expected progress 50%% ((175-150)/50), got %f", info.ProgressPercent)
	}
}
