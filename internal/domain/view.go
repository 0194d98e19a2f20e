package domain

import "time"

// ScreeningView is a screening joined with its room, cinema and movie.
type ScreeningView struct {
	ID           string
	StartsAt     time.Time
	EndsAt       time.Time
	ExtraMinutes int
	Price        Money
	Movie        MovieSummary
	Cinema       Cinema
	Room         Room
}

func NewScreeningView(s Screening, room Room, cinema Cinema, movie MovieSummary) ScreeningView {
	return ScreeningView{
		ID:           s.ID,
		StartsAt:     s.Slot.Start,
		EndsAt:       s.Slot.End,
		ExtraMinutes: s.ExtraMinutes,
		Price:        s.Price,
		Movie:        movie,
		Cinema:       cinema,
		Room:         room,
	}
}
