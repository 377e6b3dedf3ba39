package assign

// buildDiversityRows linearizes "this pair shares a table on two different
// days" so the penalty stays a set of plain inequality rows the solver can
// consume.
//
// For each unordered diner pair and eligible slot, a binary both variable is
// tied to the two assignment variables with the standard AND linearization:
//
//	both <= x1
//	both <= x2
//	-both + x1 + x2 <= 1
//
// For each pair and each pair of distinct days, the pair's overlap variable
// is pushed to 1 whenever both days seat the pair together somewhere:
//
//	-overlap + sum_slots(d1) both + sum_slots(d2) both <= 1
//
// The objective charges lambda per overlap variable. Variables exist only
// for slots actually in the model, which keeps the count in the hundreds at
// the expected scale instead of blowing up on every possible combination.
func (m *model) buildDiversityRows() {
	if !m.diversityEnabled() {
		return
	}

	nSlots := len(m.slots)
	for pairIdx, pair := range m.pairs {
		e1, e2 := pair[0], pair[1]

		for sIdx := range m.slots {
			both := m.bothIdx(pairIdx, sIdx)
			x1 := xIdx(e1, sIdx, nSlots)
			x2 := xIdx(e2, sIdx, nSlots)

			row := make([]float64, m.numVars)
			row[both] = 1
			row[x1] = -1
			m.addUbRow(row, 0)

			row = make([]float64, m.numVars)
			row[both] = 1
			row[x2] = -1
			m.addUbRow(row, 0)

			row = make([]float64, m.numVars)
			row[both] = -1
			row[x1] = 1
			row[x2] = 1
			m.addUbRow(row, 1)
		}

		overlap := m.overlapOffset + pairIdx
		for d1 := range m.in.Days {
			for d2 := d1 + 1; d2 < len(m.in.Days); d2++ {
				row := make([]float64, m.numVars)
				row[overlap] = -1
				for _, sIdx := range m.slotsByDay[d1] {
					row[m.bothIdx(pairIdx, sIdx)] = 1
				}
				for _, sIdx := range m.slotsByDay[d2] {
					row[m.bothIdx(pairIdx, sIdx)] = 1
				}
				m.addUbRow(row, 1)
			}
		}
	}
}
