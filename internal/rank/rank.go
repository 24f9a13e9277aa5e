// Package rank mappe un total de points vers le rang affiché par le frontend
// (tier, division, couleur, icône, progression vers le rang suivant).
package rank

// Tier est une entrée de la table des rangs. MaxPoints est la borne haute
// exclusive : elle vaut le MinPoints de l'entrée suivante, et le dernier point
// inclus dans le rang est MaxPoints-1.
type Tier struct {
	Name      string `json:"tier"`
	Division  int    `json:"division,omitempty"` // 1..3, 0 pour Legend
	MinPoints int    `json:"minPoints"`
	MaxPoints int    `json:"maxPoints"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
}

// Info est le rang calculé pour un total de points donné. Jamais persisté.
type Info struct {
	Current         Tier    `json:"current"`
	Next            *Tier   `json:"next,omitempty"`
	ProgressPercent float64 `json:"progressPercent"`
	PointsToNext    int     `json:"pointsToNext"`
}

// tiers est la table statique des 22 rangs, triée par MinPoints croissant.
// Les divisions montent de 1 à 3 dans chaque tier ; Legend n'a pas de division.
var tiers = []Tier{
	{Name: "Bronze", Division: 1, MinPoints: 0, MaxPoints: 50, Color: "#cd7f32", Icon: "bronze.png"},
	{Name: "Bronze", Division: 2, MinPoints: 50, MaxPoints: 100, Color: "#cd7f32", Icon: "bronze.png"},
	{Name: "Bronze", Division: 3, MinPoints: 100, MaxPoints: 150, Color: "#cd7f32", Icon: "bronze.png"},
	{Name: "Silver", Division: 1, MinPoints: 150, MaxPoints: 200, Color: "#c0c0c0", Icon: "silver.png"},
	{Name: "Silver", Division: 2, MinPoints: 200, MaxPoints: 250, Color: "#c0c0c0", Icon: "silver.png"},
	{Name: "Silver", Division: 3, MinPoints: 250, MaxPoints: 300, Color: "#c0c0c0", Icon: "silver.png"},
	{Name: "Gold", Division: 1, MinPoints: 300, MaxPoints: 400, Color: "#ffd700", Icon: "gold.png"},
	{Name: "Gold", Division: 2, MinPoints: 400, MaxPoints: 500, Color: "#ffd700", Icon: "gold.png"},
	{Name: "Gold", Division: 3, MinPoints: 500, MaxPoints: 600, Color: "#ffd700", Icon: "gold.png"},
	{Name: "Platinum", Division: 1, MinPoints: 600, MaxPoints: 700, Color: "#5ce1e6", Icon: "platinum.png"},
	{Name: "Platinum", Division: 2, MinPoints: 700, MaxPoints: 800, Color: "#5ce1e6", Icon: "platinum.png"},
	{Name: "Platinum", Division: 3, MinPoints: 800, MaxPoints: 900, Color: "#5ce1e6", Icon: "platinum.png"},
	{Name: "Diamond", Division: 1, MinPoints: 900, MaxPoints: 1050, Color: "#b9f2ff", Icon: "diamond.png"},
	{Name: "Diamond", Division: 2, MinPoints: 1050, MaxPoints: 1200, Color: "#b9f2ff", Icon: "diamond.png"},
	{Name: "Diamond", Division: 3, MinPoints: 1200, MaxPoints: 1350, Color: "#b9f2ff", Icon: "diamond.png"},
	{Name: "Master", Division: 1, MinPoints: 1350, MaxPoints: 1500, Color: "#9b30ff", Icon: "master.png"},
	{Name: "Master", Division: 2, MinPoints: 1500, MaxPoints: 1650, Color: "#9b30ff", Icon: "master.png"},
	{Name: "Master", Division: 3, MinPoints: 1650, MaxPoints: 1800, Color: "#9b30ff", Icon: "master.png"},
	{Name: "Grandmaster", Division: 1, MinPoints: 1800, MaxPoints: 2000, Color: "#ff4655", Icon: "grandmaster.png"},
	{Name: "Grandmaster", Division: 2, MinPoints: 2000, MaxPoints: 2200, Color: "#ff4655", Icon: "grandmaster.png"},
	{Name: "Grandmaster", Division: 3, MinPoints: 2200, MaxPoints: 2400, Color: "#ff4655", Icon: "grandmaster.png"},
	{Name: "Legend", Division: 0, MinPoints: 2400, MaxPoints: 2400, Color: "#ffaa00", Icon: "legend.png"},
}

// MaxPoints est le seuil du dernier rang : à partir de ce total l'utilisateur
// est Legend avec une progression de 100%.
const MaxPoints = 2400

// Tiers retourne une copie de la table des rangs (la table elle-même reste immuable).
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// ForPoints calcule le rang pour un total de points donné.
// L'appelant doit borner les valeurs négatives à 0 avant l'appel.
func ForPoints(points int) Info {
	// Premier tier dont la borne haute dépasse strictement le total.
	// Aucun match => l'utilisateur est au rang final.
	idx := -1
	for i, t := range tiers {
		if points < t.MaxPoints {
			idx = i
			break
		}
	}

	if idx == -1 || idx == len(tiers)-1 {
		return Info{
			Current:         tiers[len(tiers)-1],
			Next:            nil,
			ProgressPercent: 100,
			PointsToNext:    0,
		}
	}

	current := tiers[idx]
	next := tiers[idx+1]

	return Info{
		Current:         current,
		Next:            &next,
		ProgressPercent: float64(points-current.MinPoints) / float64(current.MaxPoints-current.MinPoints) * 100,
		PointsToNext:    next.MinPoints - points,
	}
}
