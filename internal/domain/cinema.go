package domain

import "context"

type Cinema struct {
	ID          string
	Name        string
	City        string
	Address     string
	ZipCode     string
	PhoneNumber string
}

// Room capacity of zero is used as the "sold out" sentinel by the availability filter.
type Room struct {
	ID           string
	CinemaID     string
	Name         string
	CapacitySeat int
}

type CinemaRepository interface {
	FindByID(ctx context.Context, id string) (*Cinema, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id string) (*Room, error)
}
