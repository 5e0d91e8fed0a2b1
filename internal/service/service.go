package service

import (
	"tvusm/internal/cache"
	"tvusm/internal/external"
	"tvusm/internal/messaging"
	"tvusm/internal/repository"
	"tvusm/internal/search"
)

type Services struct {
	Venues        *VenueService
	Courts        *CourtService
	Mappings      *MappingService
	Bookings      *BookingService
	Payments      *PaymentService
	Equipment     *EquipmentService
	Maintenances  *MaintenanceService
	News          *NewsService
	Notifications *NotificationService
	Users         *UserService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, paymentClient *external.PaymentClient, viewCache *cache.Client, searchClient *search.NewsClient) *Services {
	return &Services{
		Venues:        NewVenueService(repos.Venues),
		Courts:        NewCourtService(repos.Courts, repos.Venues, repos.Mappings),
		Mappings:      NewMappingService(repos.Mappings, repos.Courts),
		Bookings:      NewBookingService(repos.Bookings, repos.Courts, repos.Mappings, paymentClient, natsClient),
		Payments:      NewPaymentService(repos.Bookings, paymentClient, natsClient),
		Equipment:     NewEquipmentService(repos.Equipment, repos.Venues, repos.Bookings),
		Maintenances:  NewMaintenanceService(repos.Maintenances, repos.Courts, natsClient),
		News:          NewNewsService(repos.News, viewCache, searchClient),
		Notifications: NewNotificationService(repos.Notifications),
		Users:         NewUserService(repos.Users),
	}
}
