package create_reservation

import "github.com/m04kA/SMC-TransferService/internal/domain"

// Response созданное бронирование и клиент, на которого оно оформлено
type Response struct {
	Reservation *domain.Reservation
	Client      *domain.Client
	// PriceDuplicate = true, если для ключа цены нашлось несколько строк
	PriceDuplicate bool
}
