package main

import (
	"fmt"
	"os"

	"roomreserve/config"
	"roomreserve/internal/delivery/cli"
	"roomreserve/internal/repository/memory"
	"roomreserve/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	rooms := memory.NewRoomRepository()
	teachers := memory.NewTeacherRepository()
	bookings := memory.NewBookingRepository()
	svc := services.NewReservationService(rooms, teachers, bookings, logger)

	if err := cli.NewRoot(svc, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
