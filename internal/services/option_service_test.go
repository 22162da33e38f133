package services

import (
	"errors"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func optionFixture(t *testing.T) (OptionService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := OptionService{OptionRepo: repositories.OptionRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

func TestOptionUpsertSplitsBatch(t *testing.T) {
	svc, mock, done := optionFixture(t)
	defer done()

	mock.MatchExpectationsInOrder(false)

	// one bulk insert for the new rows
	mock.ExpectExec(`INSERT INTO options \(.*\) VALUES \(.*\),\(.*\)`).
		WillReturnResult(sqlmock.NewResult(100, 2))
	// one update per identified row
	mock.ExpectExec("UPDATE options SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE options SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := svc.Upsert([]models.Option{
		{ProductType: "hotel", ProductID: 5, Title: "Breakfast"},
		{ID: 11, ProductType: "hotel", ProductID: 5, Title: "Spa"},
		{ProductType: "hotel", ProductID: 5, Title: "Late checkout"},
		{ID: 12, ProductType: "hotel", ProductID: 5, Title: "Airport pickup"},
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("merged result should cover the batch, got %d rows", len(got))
	}
	// inserted rows come first, carrying their assigned ids
	if got[0].ID != 100 || got[1].ID != 101 {
		t.Fatalf("inserted ids wrong: %d, %d", got[0].ID, got[1].ID)
	}
	if got[2].ID != 11 || got[3].ID != 12 {
		t.Fatalf("updated ids wrong: %d, %d", got[2].ID, got[3].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOptionUpsertDerivesTotals(t *testing.T) {
	svc, mock, done := optionFixture(t)
	defer done()

	mock.ExpectExec("INSERT INTO options").
		WithArgs(
			"tour", int64(9), "Photographer", "Pending",
			2, 0, 0,
			30.0, 0.0, 0.0,
			20.0, 0.0, 0.0,
			1300.0,
			60.0, 40.0, int64(78000), int64(52000),
			"",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := svc.Upsert([]models.Option{{
		ProductType: "tour", ProductID: 9, Title: "Photographer",
		AdultCount: 2, AdultPrice: 30, AdultCost: 20, ExchangeRate: 1300,
		// client-sent totals are ignored
		TotalAmount: 999999,
	}})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOptionUpsertRejectsUnknownProductType(t *testing.T) {
	svc, _, done := optionFixture(t)
	defer done()

	_, err := svc.Upsert([]models.Option{{ProductType: "cruise", ProductID: 1}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOptionUpsertRejectsMissingProductID(t *testing.T) {
	svc, _, done := optionFixture(t)
	defer done()

	_, err := svc.Upsert([]models.Option{{ProductType: "hotel"}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOptionUpsertFailureIsGeneric(t *testing.T) {
	svc, mock, done := optionFixture(t)
	defer done()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec("UPDATE options SET").WillReturnError(errors.New("row gone"))
	mock.ExpectExec("UPDATE options SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Upsert([]models.Option{
		{ID: 11, ProductType: "hotel", ProductID: 5},
		{ID: 12, ProductType: "hotel", ProductID: 5},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	var internal domain.InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("expected the generic upsert failure, got %v", err)
	}
	// the sibling update was still issued
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sibling update should have landed: %v", err)
	}
}
