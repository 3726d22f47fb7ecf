package duplicate

import (
	"context"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// minTokenLength drops short words ("of", "in") from the blocking index.
const minTokenLength = 3

// Similarity is (maxLen - editDistance) / maxLen over the normalized titles,
// measured in runes. Two empty titles are identical.
func Similarity(a, b string) float64 {
	a, b = domain.NormalizeText(a), domain.NormalizeText(b)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-d) / float64(maxLen)
}

// matcher collects pairs above the threshold until the cap is reached.
type matcher struct {
	threshold float64
	limit     int
	matches   []domain.DuplicateMatch
}

// offer compares a and b and reports whether the cap has been reached.
func (m *matcher) offer(a, b domain.DuplicateCandidate) bool {
	if s := Similarity(a.Title, b.Title); s > m.threshold {
		m.matches = append(m.matches, domain.DuplicateMatch{
			RecordIDA:  a.ID,
			RecordIDB:  b.ID,
			Similarity: s,
			MatchType:  domain.MatchTypeTitle,
		})
	}
	return len(m.matches) >= m.limit
}

// pairwise compares every pair in cands, in candidate order.
func pairwise(ctx context.Context, cands []domain.DuplicateCandidate, m *matcher) error {
	for i := range cands {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := i + 1; j < len(cands); j++ {
			if m.offer(cands[i], cands[j]) {
				return nil
			}
		}
	}
	return nil
}

// blocked compares only pairs that share a block. Blocks are:
//   - the normalized title, so identical titles always meet;
//   - each title token carried by at most maxBlock candidates;
//   - for a candidate left without a token block, its rarest shared token,
//     however common.
//
// Pairs are visited in the same order pairwise would use.
func blocked(ctx context.Context, cands []domain.DuplicateCandidate, maxBlock int, m *matcher) error {
	byTitle := make(map[string][]int)
	byToken := make(map[string][]int)
	tokens := make([][]string, len(cands))
	for i, c := range cands {
		key := domain.NormalizeText(c.Title)
		byTitle[key] = append(byTitle[key], i)
		tokens[i] = domain.Tokens(c.Title, minTokenLength)
		for _, tok := range tokens[i] {
			byToken[tok] = append(byToken[tok], i)
		}
	}

	partners := make([][]int, len(cands))
	link := func(posting []int) {
		for x, i := range posting {
			partners[i] = append(partners[i], posting[x+1:]...)
		}
	}

	for _, posting := range byTitle {
		link(posting)
	}
	blockedIn := make([]bool, len(cands))
	for _, posting := range byToken {
		if len(posting) < 2 || len(posting) > maxBlock {
			continue
		}
		link(posting)
		for _, i := range posting {
			blockedIn[i] = true
		}
	}

	for i, toks := range tokens {
		if blockedIn[i] {
			continue
		}
		var rarest []int
		for _, tok := range toks {
			if p := byToken[tok]; len(p) >= 2 && (rarest == nil || len(p) < len(rarest)) {
				rarest = p
			}
		}
		for _, j := range rarest {
			switch {
			case j < i:
				partners[j] = append(partners[j], i)
			case j > i:
				partners[i] = append(partners[i], j)
			}
		}
	}

	for i := range cands {
		if err := ctx.Err(); err != nil {
			return err
		}
		js := partners[i]
		slices.Sort(js)
		js = slices.Compact(js)
		for _, j := range js {
			if m.offer(cands[i], cands[j]) {
				return nil
			}
		}
	}
	return nil
}
