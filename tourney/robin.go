package tourney

// Robin returns a round-robin pair schedule for n players: len(Robin(n))
// rounds, each a list of floor(n/2) pairs, every unordered pair of players
// appearing exactly once across the whole schedule.
//
// Odd n is padded with a dummy player n+1; rounds are generated by rotating
// all but the first seat one position at a time, pairing seat j with seat
// n'+1-j, and dropping any pair that touches the dummy.
func Robin(n int) [][][2]int {
	np := n
	if np%2 != 0 {
		np++
	}

	arrangement := make([]int, np)
	for i := range arrangement {
		arrangement[i] = i + 1
	}

	rounds := make([][][2]int, 0, np-1)
	for r := 0; r < np-1; r++ {
		round := make([][2]int, 0, np/2)
		for j := 1; j <= np/2; j++ {
			a, b := arrangement[j-1], arrangement[np-j]
			if a > n || b > n {
				continue
			}
			round = append(round, [2]int{a, b})
		}
		rounds = append(rounds, round)
		arrangement = rotate(arrangement)
	}
	return rounds
}

// rotate implements (x:xs) -> x : last(xs) : init(xs): the first seat stays
// fixed, the rest shift right by one with wraparound.
func rotate(a []int) []int {
	out := make([]int, len(a))
	out[0] = a[0]
	out[1] = a[len(a)-1]
	copy(out[2:], a[1:len(a)-1])
	return out
}
