package tourney

import "sort"

// Groups partitions [1..n] into ceil(n/s) groups of size <= s, optimizing
// for near-equal sum of seeds across groups. When s divides n, group
// sums differ by at most ngrps; if additionally s is even, sums are equal.
func Groups(s, n int) [][]int {
	ngrps := ceilDiv(n, s)

	gs := s
	for gs > 1 && gs*ngrps-n >= ngrps {
		gs--
	}

	modl := ngrps * gs
	npairs := ngrps * (gs / 2)
	hasLeftover := modl-2*npairs > 0

	groups := make([][]int, ngrps)
	for i := 1; i <= ngrps; i++ {
		g := make([]int, 0, gs)
		if hasLeftover {
			g = append(g, npairs+i)
		}
		for j := i; j <= npairs; j += ngrps {
			g = append(g, j, modl-j+1)
		}
		groups[i-1] = filterAndSort(g, n)
	}
	return groups
}

func filterAndSort(members []int, n int) []int {
	out := make([]int, 0, len(members))
	for _, v := range members {
		if v <= n {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
