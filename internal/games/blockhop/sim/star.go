package sim

import "math"

const (
	starMargin       = 6
	starLift         = 4
	starMaxPlatformY = 360
)

// SpawnStar places the level star on a random raised platform.
// Ground-level platforms and platforms narrower than 24 px are skipped. It
// returns nil when no platform qualifies or the chosen one is too narrow to
// fit the star with its margins.
func SpawnStar(platforms []Platform, rng RNG) *Collectible {
	var candidates []Platform
	for _, p := range platforms {
		if p.Y < starMaxPlatformY && p.W >= 24 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	p := candidates[rng.Intn(len(candidates))]
	minX := p.X + starMargin
	maxX := p.Right() - StarSize - starMargin
	if maxX <= minX {
		return nil
	}
	x := math.Floor(minX + rng.Float64()*(maxX-minX))
	return &Collectible{
		Rect: R(x, p.Y-StarSize-starLift, StarSize, StarSize),
		Kind: CollectibleStar,
	}
}
