package get_quote

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// ToPricingKey собирает ключ цены из query параметров
func ToPricingKey(q url.Values) domain.PricingKey {
	return domain.PricingKey{
		ServiceID:             strings.TrimSpace(q.Get("serviceId")),
		VehicleTypeID:         strings.TrimSpace(q.Get("vehicleTypeId")),
		PickupLocationID:      strings.TrimSpace(q.Get("pickup")),
		DestinationLocationID: strings.TrimSpace(q.Get("destination")),
	}
}
