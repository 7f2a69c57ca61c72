package trivia

// NextQuestion scans questions in order and returns the first whose id is not in
// previous. The second result is false once every question has been asked.
func NextQuestion(questions []Question, previous []int) (Question, bool) {
	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}
	for _, q := range questions {
		if _, seen := asked[q.ID]; !seen {
			return q, true
		}
	}
	return Question{}, false
}
