package bibmatch

// TitleScores breaks a title comparison down into its component metrics.
type TitleScores struct {
	Jaccard     float64
	Containment float64 // bidirectional
	Edit        float64
	Subtitle    float64 // after the derivative-work cap
	Derivative  bool    // an extra token marks a derivative work
}

// MatchTitles compares two raw titles and reports whether they name the
// same work together with the winning score.
func MatchTitles(a, b string) (bool, float64) {
	score, _ := ScoreTitles(a, b)
	return score >= TitleMatchThreshold, score
}

// ScoreTitles returns the combined title score and its components.
// Identical normalized titles score 1 with zero-valued components.
func ScoreTitles(a, b string) (float64, TitleScores) {
	if NormalizeText(a) == NormalizeText(b) {
		return 1, TitleScores{}
	}

	v := DefaultVocabulary()
	tokensA, tokensB := titleTokens(v, a), titleTokens(v, b)

	s := TitleScores{
		Jaccard:     Jaccard(tokensA, tokensB),
		Containment: BidirectionalContainment(tokensA, tokensB),
		Edit:        LevenshteinSimilarity(a, b),
	}
	s.Subtitle, s.Derivative = subtitleScore(v, tokensA, tokensB)

	return max(s.Jaccard, s.Containment, s.Edit, s.Subtitle), s
}

// subtitleScore rewards a short title wholly contained in a longer one
// ("Dune" in "Dune: Deluxe Edition"), penalised per extra token. Extra
// tokens that mark a derivative work cap the score.
func subtitleScore(v *Vocabulary, a, b []string) (float64, bool) {
	shorter, longer := a, b
	if len(b) < len(a) {
		shorter, longer = b, a
	}
	if len(shorter) == 0 || Containment(shorter, longer) < SubtitleContainmentFloor {
		return 0, false
	}

	inShorter := tokenSet(shorter)
	var extra []string
	for _, t := range longer {
		if _, ok := inShorter[t]; !ok {
			extra = append(extra, t)
		}
	}

	score := SubtitleBaseScore - min(SubtitleMaxPenalty, SubtitlePenaltyPerToken*float64(len(extra)))
	if len(shorter) == 1 {
		score -= SingleTokenPenalty
	}

	for _, t := range extra {
		if v.IsDerivativeMarker(t) {
			return min(score, DerivativeScoreCap), true
		}
	}
	return score, false
}
