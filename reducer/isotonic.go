// SPDX-License-Identifier: MIT

package reducer

// isotonic returns the non-decreasing sequence closest to y in least squares
// (pool-adjacent-violators). y must already be ordered by the predictor.
//
// Complexity: O(len(y)) amortized.
func isotonic(y []float64) []float64 {
	type block struct {
		sum   float64
		count int
	}
	blocks := make([]block, 0, len(y))
	for _, v := range y {
		blocks = append(blocks, block{sum: v, count: 1})
		// Merge while the last block's mean is below its predecessor's.
		for len(blocks) > 1 {
			a, b := blocks[len(blocks)-2], blocks[len(blocks)-1]
			if a.sum*float64(b.count) <= b.sum*float64(a.count) {
				break
			}
			blocks = blocks[:len(blocks)-2]
			blocks = append(blocks, block{sum: a.sum + b.sum, count: a.count + b.count})
		}
	}

	out := make([]float64, 0, len(y))
	for _, b := range blocks {
		mean := b.sum / float64(b.count)
		for k := 0; k < b.count; k++ {
			out = append(out, mean)
		}
	}

	return out
}
