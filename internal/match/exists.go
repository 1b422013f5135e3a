package match

// Exists reports whether a record matching candidate already exists in
// collection. A record matches when every scalar leaf of the candidate
// appears somewhere among the record's own leaves, regardless of nesting,
// field order, or key names.
//
// The result is true only when exactly one record matches. Zero matches
// means the candidate does not exist; two or more matches are treated as
// ambiguous and also report false, so a caller guarding a create or delete
// never acts on an ambiguous collection. See MatchCount for the raw count.
func Exists(candidate Record, collection []Record) bool {
	return MatchCount(candidate, collection) == 1
}

// MatchCount returns how many records in collection are superset matches
// of candidate. Exposed so callers that need stricter semantics than the
// exactly-one policy can inspect the multiplicity themselves.
func MatchCount(candidate Record, collection []Record) int {
	want := leafSet(candidate)
	if len(want) == 0 {
		return 0
	}

	count := 0
	for _, record := range collection {
		if subset(want, leafSet(record)) {
			count++
		}
	}
	return count
}

func subset(want, have map[string]struct{}) bool {
	for key := range want {
		if _, ok := have[key]; !ok {
			return false
		}
	}
	return true
}
