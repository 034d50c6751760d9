package adapters

import (
	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/models/store"
)

func MapStoreCostToDomain(record store.CostRecord) domain.Cost {
	return domain.Cost{
		ID:          record.ID,
		Amount:      record.Amount,
		Date:        record.Date,
		Category:    domain.CostCategory(record.Category),
		Description: record.Description,
	}
}

func MapDomainCostToStore(c domain.Cost) store.CostRecord {
	return store.CostRecord{
		ID:          c.ID,
		Amount:      c.Amount,
		Date:        c.Date,
		Category:    string(c.Category),
		Description: c.Description,
	}
}

func MapCostDomainToApi(c domain.Cost) api.Cost {
	return api.Cost{
		ID:          c.ID,
		Amount:      c.Amount,
		Date:        c.Date,
		Category:    string(c.Category),
		Description: c.Description,
		Estimated:   c.Estimated,
	}
}

func MapCostApiToDomain(c api.Cost) domain.Cost {
	return domain.Cost{
		ID:          c.ID,
		Amount:      c.Amount,
		Date:        c.Date,
		Category:    domain.CostCategory(c.Category),
		Description: c.Description,
	}
}
