package contents

import "container/heap"

// PackageCount is one ranked entry of the statistics report.
type PackageCount struct {
	Package string
	Count   int
}

// TopK returns the packages with the highest file counts, ordered by count
// descending. Equal counts are broken by package name ascending, so the
// output is deterministic. Linear heap construction plus one pop per emitted
// entry keeps the cost at O(N + K log N) rather than a full sort.
func TopK(counts map[string]int, sel Selection) []PackageCount {
	h := make(countHeap, 0, len(counts))
	for pkg, count := range counts {
		h = append(h, PackageCount{Package: pkg, Count: count})
	}
	heap.Init(&h)

	k := sel.limit(len(h))
	result := make([]PackageCount, 0, k)
	for len(result) < k {
		result = append(result, heap.Pop(&h).(PackageCount))
	}
	return result
}

// byHigherCount orders entries by count descending, then by package name
// ascending.
func byHigherCount(entries []PackageCount, i, j int) bool {
	if entries[i].Count != entries[j].Count {
		return entries[i].Count > entries[j].Count
	}
	return entries[i].Package < entries[j].Package
}

// A max heap over package counts.
type countHeap []PackageCount

func (h countHeap) Len() int { return len(h) }

func (h countHeap) Less(i, j int) bool {
	return byHigherCount(h, i, j)
}

func (h countHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *countHeap) Push(entry any) {
	*h = append(*h, entry.(PackageCount))
}

func (h *countHeap) Pop() any {
	prev := *h
	n := len(prev)
	it := prev[n-1]
	*h = prev[:n-1]
	return it
}
