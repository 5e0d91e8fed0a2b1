package repository

import (
	"tvusm/internal/database"
)

type Repositories struct {
	Users         *UserRepository
	Venues        *VenueRepository
	Courts        *CourtRepository
	Mappings      *CourtMappingRepository
	Bookings      *BookingRepository
	Equipment     *EquipmentRepository
	Maintenances  *MaintenanceRepository
	News          *NewsRepository
	Notifications *NotificationRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Venues:        NewVenueRepository(db),
		Courts:        NewCourtRepository(db),
		Mappings:      NewCourtMappingRepository(db),
		Bookings:      NewBookingRepository(db),
		Equipment:     NewEquipmentRepository(db),
		Maintenances:  NewMaintenanceRepository(db),
		News:          NewNewsRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
