package poker

// Combinations returns every k-element subset of the indexes 0..n-1, in lexicographic order.
// It returns nil if k is negative or larger than n.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}

	var result [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]int, k)
		copy(combo, idx)
		result = append(result, combo)

		// find the right-most index that can still move
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return result
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
