package dfa

import "github.com/coregx/bfdfa/internal/sparse"

// Minimize collapses t to the coarsest congruence where p ≡ q implies both
// states agree on Accepting and, for every input, transition to
// ≡-equivalent states. It is Hopcroft's partition refinement, kept
// representative-stable: each class's representative is always its
// lowest-indexed member, so the rewritten table is canonical regardless of
// which half of a split happened to get the new class id.
func Minimize(t *Table) {
	n := len(t.Rows)
	partition := make([]int, n)
	reps := []int{0}

	initialAccepting := t.Rows[0].Accepting
	seenDifferent := false
	for id, row := range t.Rows {
		if row.Accepting != initialAccepting {
			partition[id] = 1
			if !seenDifferent {
				seenDifferent = true
				reps = append(reps, id)
			}
		}
	}

	queue := []int{0}
	if seenDifferent {
		queue = append(queue, 1)
	}

	// preimage and halves are allocated once and reused for every (class,
	// input) pair below via Clear, rather than reallocated per iteration;
	// their capacity never needs to exceed n.
	preimage := sparse.NewSparseSet(uint32(n))
	halves := sparse.NewSparseSets(uint32(n))

	// inSplitter marks the popped class's members as they were at pop time,
	// so a split of that class during its own pass does not shrink the
	// splitter used for the remaining inputs.
	inSplitter := make([]bool, n)

	for len(queue) > 0 {
		current := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for i := range partition {
			inSplitter[i] = partition[i] == current
		}

		for s := 0; s < AlphabetSize; s++ {
			preimage.Clear()
			for i, row := range t.Rows {
				if inSplitter[row.Next[s]] {
					preimage.Insert(uint32(i))
				}
			}

			// Split against every class that existed when this input's
			// preimage was computed. Classes created by a split earlier in
			// this same input's pass are not revisited for this input: each
			// lies wholly inside or wholly outside the preimage.
			numParts := len(reps)
			for part := 0; part < numParts; part++ {
				halves.Clear()
				var minIntersection, minRemainder = -1, -1
				for state := 0; state < n; state++ {
					if partition[state] != part {
						continue
					}
					if preimage.Contains(uint32(state)) {
						halves.Set1.Insert(uint32(state))
						if minIntersection == -1 {
							minIntersection = state
						}
					} else {
						halves.Set2.Insert(uint32(state))
						if minRemainder == -1 {
							minRemainder = state
						}
					}
				}

				if halves.Set1.IsEmpty() || halves.Set2.IsEmpty() {
					continue
				}

				intersectionLen := halves.Set1.Len()
				remainderLen := halves.Set2.Len()

				var lowerMin, higherMin, interID, remainID int
				if minIntersection < minRemainder {
					// Set1 (intersection) already holds the class's lowest
					// member, so it keeps the old id; Set2 gets the new one.
					lowerMin, higherMin = minIntersection, minRemainder
					interID, remainID = part, len(reps)
				} else {
					// The remainder holds the lower member instead, so swap
					// the pair: Set1 is now the half that keeps the old id,
					// Set2 the half that gets the new one.
					halves.Swap()
					lowerMin, higherMin = minRemainder, minIntersection
					interID, remainID = len(reps), part
				}

				newClass := len(reps)
				halves.Set2.Iter(func(state uint32) {
					partition[state] = newClass
				})
				reps = append(reps, higherMin)
				reps[part] = lowerMin

				// If the split class is still queued, queue the new class as
				// well; otherwise queue only the smaller half.
				switch {
				case containsInt(queue, part):
					queue = append(queue, newClass)
				case intersectionLen <= remainderLen:
					queue = append(queue, interID)
				default:
					queue = append(queue, remainID)
				}
			}
		}
	}

	newRows := make([]Row, 0, len(reps))
	for _, oldID := range reps {
		row := t.Rows[oldID]
		for s := range row.Next {
			row.Next[s] = partition[row.Next[s]]
		}
		newRows = append(newRows, row)
	}
	t.Rows = newRows
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
