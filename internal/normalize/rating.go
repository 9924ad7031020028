package normalize

// HLTV-style rating constants. These are fixed reference averages; the outputs
// are compared against golden values in tests, so they must not drift.
const (
	avgKPR = 0.679 // kills per round
	avgSPR = 0.317 // survived rounds per round
	avgRMK = 1.277 // weighted multi-kill rounds per round
)

// Rating computes the weighted composite performance rating from raw per-round
// counters. A player with zero rounds has no defined rating and scores 0.
// The result is unbounded above; extreme inputs produce extreme ratings.
func Rating(kills, roundsPlayed, deaths, k1, k2, k3, k4, k5 int) float64 {
	if roundsPlayed == 0 {
		return 0
	}
	rounds := float64(roundsPlayed)
	killRating := float64(kills) / rounds / avgKPR
	survivalRating := (rounds - float64(deaths)) / rounds / avgSPR
	multiKill := float64(k1+4*k2+9*k3+16*k4+25*k5) / rounds / avgRMK
	return (killRating + 0.7*survivalRating + multiKill) / 2.7
}
