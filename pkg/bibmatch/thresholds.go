package bibmatch

// Empirical cut-offs and weights for the staged match decision.
// Changing any of these changes which books get auto-added.
const (
	TitleMatchThreshold  = 0.75
	AuthorMatchThreshold = 0.6

	SubtitleContainmentFloor = 0.95
	SubtitleBaseScore        = 0.95
	SubtitlePenaltyPerToken  = 0.03
	SubtitleMaxPenalty       = 0.20
	SingleTokenPenalty       = 0.05
	DerivativeScoreCap       = 0.4

	NeutralAuthorScore   = 0.5
	AuthorSubstringScore = 0.95
	AuthorAllTokensScore = 0.9
	AuthorPartialWeight  = 0.8
	AuthorEditWeight     = 0.9

	TitleWeight  = 0.6
	AuthorWeight = 0.4
)
