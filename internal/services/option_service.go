package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// OptionService reconciles additional-option batches: one bulk insert for the
// identifier-less subset, one update per identified row, all issued
// concurrently.
type OptionService struct {
	OptionRepo repositories.OptionRepository
	RequestID  string
}

// Upsert persists the batch and returns the merged set of inserted and
// updated rows, which the form uses to reset its dirty-state baseline.
// Partial application is possible: a failing update does not undo its
// siblings, and the whole batch then reports a generic upsert failure.
func (s OptionService) Upsert(items []models.Option) ([]models.Option, error) {
	for i := range items {
		if !domain.ValidProductType(domain.ProductType(items[i].ProductType)) {
			return nil, domain.ValidationError{Field: "product_type", Msg: "unknown product type " + items[i].ProductType}
		}
		if items[i].ProductID <= 0 {
			return nil, domain.ValidationError{Field: "product_id", Msg: "required"}
		}
		applyOptionTotals(&items[i])
	}

	batch := domain.Partition(items, func(o models.Option) int64 { return o.ID })

	var inserted []models.Option
	updated := make([]models.Option, len(batch.Update))

	jobs := make([]func() error, 0, len(batch.Update)+1)
	if len(batch.Insert) > 0 {
		jobs = append(jobs, func() error {
			var err error
			inserted, err = s.OptionRepo.BulkInsert(batch.Insert)
			return err
		})
	}
	for i := range batch.Update {
		jobs = append(jobs, func(i int) func() error {
			return func() error {
				var err error
				updated[i], err = s.OptionRepo.UpdateByID(batch.Update[i])
				return err
			}
		}(i))
	}

	utils.LogEvent(s.RequestID, "options", "upsert",
		fmt.Sprintf("insert=%d update=%d", len(batch.Insert), len(batch.Update)))

	if err := runAll(jobs); err != nil {
		return nil, domain.InternalError{Msg: "options upsert failed", Err: err}
	}

	return append(inserted, updated...), nil
}

// ListByProduct returns the options of one product line item.
func (s OptionService) ListByProduct(productType string, productID int64) ([]models.Option, error) {
	if !domain.ValidProductType(domain.ProductType(productType)) {
		return nil, domain.ValidationError{Field: "product_type", Msg: "unknown product type " + productType}
	}
	if productID <= 0 {
		return nil, domain.ValidationError{Field: "product_id", Msg: "required"}
	}
	return s.OptionRepo.ListByProduct(productType, productID)
}
