package redline

// detectMoves implements the move-detection hook of spec §4.5 / §9: pure
// Deleted and Inserted paragraph blocks (never paragraphs that are part of
// a Matched inline diff) whose normalized texts match exactly are
// reclassified as a MovedFrom/MovedTo pair.
//
// Policy (an implementation choice spec §9 leaves open, "exact-normalized-
// text pairing only"): paragraphs are paired in document order on a first-
// available basis — the first unmatched Deleted block with a given
// normalized text is paired with the first subsequent-or-prior unmatched
// Inserted block sharing that text. This is a superset of the spec's
// "runs of consecutive Deleted-only/Inserted-only paragraphs" framing: it
// also catches moves separated by unrelated Matched paragraphs, which a
// strictly-adjacent-runs check would miss, while still only ever pairing on
// exact normalized-text equality.
func detectMoves(records []*blockRecord) {
	deletedByText := map[string][]*blockRecord{}
	for _, rec := range records {
		if rec.kind == kindDeleted {
			rec.normalized = normalizedTextOf(rec.paragraph)
			if rec.normalized == "" {
				continue // empty paragraphs are never treated as moves
			}
			deletedByText[rec.normalized] = append(deletedByText[rec.normalized], rec)
		}
	}

	for _, rec := range records {
		if rec.kind != kindInserted {
			continue
		}
		norm := normalizedTextOf(rec.paragraph)
		if norm == "" {
			continue
		}
		candidates := deletedByText[norm]
		if len(candidates) == 0 {
			continue
		}
		match := candidates[0]
		deletedByText[norm] = candidates[1:]

		match.kind = kindMovedFrom
		rec.kind = kindMovedTo
		rec.normalized = norm
	}
}
