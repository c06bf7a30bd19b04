// Package classiccase holds the clues of the classic Detective Quest case used by the demo command.
package classiccase

import "github.com/myrjola/casefile/internal/models"

// Clues returns the case clues in the order they are discovered.
func Clues() []models.Entry {
	return []models.Entry{
		{Clue: "Carteira roubada", Suspect: "Bruno"},
		{Clue: "Impressão digital", Suspect: "Carlos"},
		{Clue: "Relógio quebrado", Suspect: "Bruno"},
		{Clue: "Testemunha ocular", Suspect: "Ana"},
		{Clue: "Pegadas na lama", Suspect: "Carlos"},
		{Clue: "Bilhete anônimo", Suspect: "Ana"},
		{Clue: "Arma do crime", Suspect: "Bruno"},
	}
}

// Suspects returns the suspects questioned in the demo, in questioning order.
func Suspects() []string {
	return []string{"Bruno", "Ana", "Carlos"}
}
