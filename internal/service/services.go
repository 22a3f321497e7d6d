package service

import (
	"github.com/kirinyoku/aerobook/internal/cards"
	"github.com/kirinyoku/aerobook/internal/repository/filestore"
	"github.com/kirinyoku/aerobook/internal/service/booking"
)

type Services struct {
	Booking *booking.Service
}

func NewServices(
	airports *filestore.AirportDirectory,
	layouts *filestore.LayoutSource,
	store *filestore.FlightStore,
	registry *cards.Registry,
	writer *filestore.CardWriter,
) *Services {
	return &Services{
		Booking: booking.New(airports, layouts, store, registry, writer),
	}
}
