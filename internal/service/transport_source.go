package service

import (
	"context"

	"github.com/packmate/backend/internal/domain"
)

var commonTransportItems = []domain.Item{
	{Name: "여권/신분증", Category: domain.CategoryDocuments, IsEssential: true},
	{Name: "지갑", Category: domain.CategoryEssentials, IsEssential: true},
	{Name: "휴대폰 충전기", Category: domain.CategoryElectronics, IsEssential: true},
}

var transportItems = map[domain.TransportType][]domain.Item{
	domain.TransportPlane: {
		{Name: "여권", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "비행기 탑승권", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "목베개", Category: domain.CategoryEssentials},
		{Name: "귀마개", Category: domain.CategoryEssentials},
		{Name: "수면 안대", Category: domain.CategoryEssentials},
		{Name: "이어폰/헤드폰", Category: domain.CategoryElectronics},
	},
	domain.TransportTrain: {
		{Name: "기차 티켓", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "이어폰/헤드폰", Category: domain.CategoryElectronics},
		{Name: "간식", Category: domain.CategoryEssentials},
	},
	domain.TransportShip: {
		{Name: "배 티켓", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "멀미약", Category: domain.CategoryMedicines},
		{Name: "방수 가방", Category: domain.CategoryEssentials},
	},
	domain.TransportBus: {
		{Name: "버스 티켓", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "이어폰/헤드폰", Category: domain.CategoryElectronics},
		{Name: "목베개", Category: domain.CategoryEssentials},
	},
	domain.TransportWalk: {
		{Name: "편안한 신발", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
		{Name: "지도", Category: domain.CategoryEssentials},
	},
	domain.TransportOther: {
		{Name: "교통편 티켓", Category: domain.CategoryDocuments, IsEssential: true},
	},
}

// TransportItemSource suggests travel documents and comfort items for the
// chosen transport
type TransportItemSource struct{}

// NewTransportItemSource creates a transport source
func NewTransportItemSource() *TransportItemSource {
	return &TransportItemSource{}
}

// Name implements ItemSource
func (s *TransportItemSource) Name() string { return "transport" }

// Items implements ItemSource
func (s *TransportItemSource) Items(_ context.Context, trip domain.TripInput) ([]domain.Item, error) {
	return DeriveFromTransport(trip.TransportType), nil
}

// DeriveFromTransport returns the common set followed by the mode-specific set
func DeriveFromTransport(mode domain.TransportType) []domain.Item {
	specific, ok := transportItems[mode]
	if !ok {
		specific = transportItems[domain.TransportOther]
	}

	items := make([]domain.Item, 0, len(commonTransportItems)+len(specific))
	items = append(items, commonTransportItems...)
	items = append(items, specific...)
	return items
}
