package bibmatch

// MatchType records which stage of the staged decision produced a result.
type MatchType string

const (
	MatchTypeISBN        MatchType = "isbn"
	MatchTypeTitleAuthor MatchType = "title-author"
	MatchTypeTitleOnly   MatchType = "title-only"
	MatchTypeNone        MatchType = "none"
)

// Candidate is one external search result being evaluated.
type Candidate struct {
	Title  string
	Author string
	ISBN   string
	ISBN10 string
	ISBN13 string

	// Extra carries source metadata that plays no part in matching
	// (download URL, format, size, ...).
	Extra map[string]string
}

// Target is the record a match is being searched for.
type Target struct {
	Title   string
	Authors []string
	ISBN10  string
	ISBN13  string
}

// Details exposes the component scores behind a Result.
type Details struct {
	TitleScore  float64
	AuthorScore float64
	ISBNMatch   bool
}

// Result is the verdict of MatchMetadata. A Type of MatchTypeNone always comes
// with IsMatch false.
type Result struct {
	IsMatch    bool
	Confidence float64 // 0.0-1.0
	Type       MatchType
	Details    Details
}

// MatchMetadata runs the staged decision for one candidate:
//  1. any agreeing ISBN is authoritative and short-circuits text comparison;
//  2. a title mismatch rejects the candidate;
//  3. the author decides, but only when the target names any authors
//     (blank names do not count).
func MatchMetadata(c Candidate, t Target) Result {
	if MatchISBN(c, t) {
		return Result{
			IsMatch:    true,
			Confidence: 1,
			Type:       MatchTypeISBN,
			Details:    Details{ISBNMatch: true},
		}
	}

	titleOK, titleScore := MatchTitles(c.Title, t.Title)
	if !titleOK {
		return Result{
			Confidence: titleScore,
			Type:       MatchTypeNone,
			Details:    Details{TitleScore: titleScore},
		}
	}

	authors := presentAuthors(t.Authors)
	authorOK, authorScore := MatchAuthors(c.Author, authors)
	res := Result{
		Confidence: titleScore*TitleWeight + authorScore*AuthorWeight,
		Details: Details{
			TitleScore:  titleScore,
			AuthorScore: authorScore,
		},
	}

	hasAuthors := len(authors) > 0
	switch {
	case hasAuthors && !authorOK:
		// A title alone is not enough once the authors are known.
		res.Type = MatchTypeNone
	case hasAuthors:
		res.IsMatch = true
		res.Type = MatchTypeTitleAuthor
	default:
		res.IsMatch = true
		res.Type = MatchTypeTitleOnly
	}
	return res
}

// FindBestMatch returns the matching candidate with the highest confidence
// and its result. Ties keep the earliest candidate. When nothing matches it
// returns nil, nil: callers must treat that as "no suitable match" rather
// than fall back to a weaker guess.
func FindBestMatch(candidates []Candidate, t Target) (*Candidate, *Result) {
	var (
		best       *Candidate
		bestResult *Result
	)
	for i := range candidates {
		res := MatchMetadata(candidates[i], t)
		if !res.IsMatch {
			continue
		}
		if bestResult == nil || res.Confidence > bestResult.Confidence {
			best = &candidates[i]
			bestResult = &res
		}
	}
	return best, bestResult
}
