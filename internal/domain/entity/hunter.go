package entity

import "time"

// Razas admitidas para un cazador.
const (
	RaceHuman   = "humano"
	RaceElf     = "elfo"
	RaceWitcher = "brujo"
	RaceDwarf   = "enano"
	RaceGhost   = "fantasma"
)

// HunterRaces enumera las razas válidas.
var HunterRaces = []string{RaceHuman, RaceElf, RaceWitcher, RaceDwarf, RaceGhost}

// Hunter representa un cazador, la parte que compra bienes.
type Hunter struct {
	ID        int64
	Name      string
	Race      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
