package question

import "math/rand/v2"

// ShuffleOptions returns a copy of q with its options permuted and Correct
// pointing at the same option text. A nil rng uses the package-level source.
func ShuffleOptions(q Question, rng *rand.Rand) Question {
	order := make([]int, len(q.Options))
	for i := range order {
		order[i] = i
	}
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng == nil {
		rand.Shuffle(len(order), swap)
	} else {
		rng.Shuffle(len(order), swap)
	}

	out := q
	out.Options = make([]string, len(q.Options))
	for position, source := range order {
		out.Options[position] = q.Options[source]
		if source == q.Correct {
			out.Correct = position
		}
	}
	return out
}

// ShuffleSet returns a copy of set with every question's options shuffled.
func ShuffleSet(set QuestionSet, rng *rand.Rand) QuestionSet {
	out := set
	out.Questions = make([]Question, len(set.Questions))
	for i, q := range set.Questions {
		out.Questions[i] = ShuffleOptions(q, rng)
	}
	return out
}
