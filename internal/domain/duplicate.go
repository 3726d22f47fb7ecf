package domain

// MatchType names the field a duplicate match was found on.
type MatchType string

const MatchTypeTitle MatchType = "Title"

// DuplicateMatch is a pair of records whose titles are near-identical.
type DuplicateMatch struct {
	RecordIDA  string
	RecordIDB  string
	Similarity float64
	MatchType  MatchType
}

// DuplicateCandidate is the projection of a record the detector works on.
type DuplicateCandidate struct {
	ID    string
	Title string
}
