package adapters

import (
	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/models/store"
)

func MapStoreTripToDomain(record store.TripRecord) domain.Trip {
	t := domain.Trip{
		ID:            record.ID,
		Platform:      domain.Platform(record.Platform),
		DistanceKm:    record.DistanceKm,
		Fare:          record.Fare,
		StartTime:     record.StartTime,
		EndTime:       record.EndTime,
		PartnerID:     record.PartnerID,
		PickupAddress: record.PickupAddress,
		PaymentMethod: record.PaymentMethod,
	}
	if record.Lat != nil && record.Lng != nil {
		t.Location = &domain.Coordinate{Lat: *record.Lat, Lng: *record.Lng}
	}
	return t
}

func MapDomainTripToStore(t domain.Trip) store.TripRecord {
	record := store.TripRecord{
		ID:            t.ID,
		Platform:      string(t.Platform),
		DistanceKm:    t.DistanceKm,
		Fare:          t.Fare,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		PartnerID:     t.PartnerID,
		PickupAddress: t.PickupAddress,
		PaymentMethod: t.PaymentMethod,
	}
	if t.Location != nil {
		lat, lng := t.Location.Lat, t.Location.Lng
		record.Lat, record.Lng = &lat, &lng
	}
	return record
}

func MapTripDomainToApi(t domain.Trip) api.Trip {
	out := api.Trip{
		ID:            t.ID,
		Platform:      string(t.Platform),
		DistanceKm:    t.DistanceKm,
		Fare:          t.Fare,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		PartnerID:     t.PartnerID,
		PickupAddress: t.PickupAddress,
		PaymentMethod: t.PaymentMethod,
	}
	if t.Location != nil {
		lat, lng := t.Location.Lat, t.Location.Lng
		out.Lat, out.Lng = &lat, &lng
	}
	return out
}

func MapTripApiToDomain(t api.Trip) domain.Trip {
	out := domain.Trip{
		ID:            t.ID,
		Platform:      domain.Platform(t.Platform),
		DistanceKm:    t.DistanceKm,
		Fare:          t.Fare,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		PartnerID:     t.PartnerID,
		PickupAddress: t.PickupAddress,
		PaymentMethod: t.PaymentMethod,
	}
	if t.Lat != nil && t.Lng != nil {
		out.Location = &domain.Coordinate{Lat: *t.Lat, Lng: *t.Lng}
	}
	return out
}
