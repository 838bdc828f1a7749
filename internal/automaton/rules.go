package automaton

// curated lists the rules known to produce interesting patterns when seeded
// with a sparse random row. Rules outside this list tend to die out or fill
// the screen within a handful of generations.
var curated = []int{
	1, 6, 7, 9, 18, 22, 26, 28, 30, 37, 41, 45, 50, 54, 57, 59, 60,
	61, 62, 65, 69, 70, 73, 74, 75, 77, 79, 81, 82, 84, 91, 92, 94,
	99, 101, 102, 105, 107, 109, 118, 121, 126, 129, 131, 132, 133,
	135, 137, 141, 143, 145, 146, 147, 149, 150, 151, 157, 158,
	161, 163, 166, 167, 169, 177, 182, 185, 188, 189, 195, 197,
	201, 203, 205, 206, 211, 212, 214, 215, 222, 225, 229, 230,
	241, 242, 246,
}

// Curated returns a copy of the hand-picked rule pool.
func Curated() []int {
	return append([]int(nil), curated...)
}

// All returns every rule index from 0 through 255.
func All() []int {
	pool := make([]int, 256)
	for i := range pool {
		pool[i] = i
	}
	return pool
}
