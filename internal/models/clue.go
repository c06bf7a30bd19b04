package models

// Entry associates a clue found during an investigation with the suspect it points to.
// Entries are immutable once inserted into the clue table.
type Entry struct {
	Clue    string
	Suspect string
}

// SuspectCount is the number of clues that mention a suspect. Count is always at least one.
type SuspectCount struct {
	Name  string
	Count int
}
