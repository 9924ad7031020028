package normalize

// ResolveWinner maps a raw winner value onto the domain convention: 1 for the
// first side, 2 for the second, nil when undetermined.
//
// Priority order:
//  1. nil or 0 raw winner is ambiguous with "unset" and falls through to the
//     score comparison.
//  2. A raw winner equal to team1ID or team2ID is a backend team identity.
//  3. A raw winner of exactly 1 or 2 already uses the domain convention.
//  4. Anything else is decided on score; tied scores stay nil, never guessed.
//
// The resolver knows nothing about cancelled or forfeit flags; callers must
// not feed real scores for matches that are ineligible for score derivation.
func ResolveWinner(raw *int, team1ID, team2ID, score1, score2 int) *int {
	if raw != nil && *raw != 0 {
		switch {
		case *raw == team1ID:
			return side(1)
		case *raw == team2ID:
			return side(2)
		case *raw == 1 || *raw == 2:
			return side(*raw)
		}
	}
	switch {
	case score1 > score2:
		return side(1)
	case score2 > score1:
		return side(2)
	}
	return nil
}

func side(n int) *int {
	return &n
}
