package adapters

import (
	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/models/store"
)

func MapStoreImportToDomain(record store.ImportRecord) domain.ImportEntry {
	return domain.ImportEntry{
		ID:          record.ID,
		Date:        record.Date,
		Kind:        domain.ImportKind(record.Kind),
		FileName:    record.FileName,
		Platform:    record.Platform,
		TripCount:   record.TripCount,
		Amount:      record.Amount,
		Description: record.Description,
		RelatedIDs:  record.RelatedIDs,
	}
}

func MapDomainImportToStore(entry domain.ImportEntry) store.ImportRecord {
	return store.ImportRecord{
		ID:          entry.ID,
		Date:        entry.Date,
		Kind:        store.ImportKind(entry.Kind),
		FileName:    entry.FileName,
		Platform:    entry.Platform,
		TripCount:   entry.TripCount,
		Amount:      entry.Amount,
		Description: entry.Description,
		RelatedIDs:  entry.RelatedIDs,
	}
}

func MapImportEntryDomainToApi(entry domain.ImportEntry) api.ImportEntry {
	return api.ImportEntry{
		ID:          entry.ID,
		Date:        entry.Date,
		Kind:        string(entry.Kind),
		FileName:    entry.FileName,
		Platform:    entry.Platform,
		TripCount:   entry.TripCount,
		Amount:      entry.Amount,
		Description: entry.Description,
	}
}
