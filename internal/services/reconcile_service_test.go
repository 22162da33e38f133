package services

import (
	"errors"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var reservationCols = []string{
	"id", "code", "status", "primary_client_name",
	"exchange_rate", "total_amount", "created_at", "updated_at",
}

func reconcileFixture(t *testing.T) (ReconcileService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ReconcileService{
		ReservationRepo: repositories.ReservationRepository{DB: db},
		ClientRepo:      repositories.ClientRepository{DB: db},
		ProductRepo:     repositories.ProductRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestReconcilePropagatesEditedExchangeRate(t *testing.T) {
	svc, mock, done := reconcileFixture(t)
	defer done()

	// collection writes fan out concurrently
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM reservations").WithArgs("20250110-JH001").
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(7, "20250110-JH001", "Pending", "", 1300.0, 0.0, "", ""))

	mock.ExpectExec("UPDATE reservations SET exchange_rate=").
		WithArgs(1350.0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// unflagged flight keeps its own rate: a zero sentinel rides the upsert
	mock.ExpectExec("INSERT INTO flights").
		WithArgs(
			int64(3), int64(7), "Pending",
			1, 0, 0,
			50.0, 0.0, 0.0,
			0.0, 0.0, 0.0,
			0.0,
			50.0, 0.0, int64(60000), int64(0),
			"",
			"", "", "", "", "",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// flagged hotel carries the reservation's new rate
	mock.ExpectExec("INSERT INTO hotels").
		WithArgs(
			int64(5), int64(7), "Pending",
			2, 0, 0,
			100.0, 0.0, 0.0,
			0.0, 0.0, 0.0,
			1350.0,
			400.0, 0.0, int64(540000), int64(0),
			"",
			"", "", "", "", 2,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("UNION ALL").
		WithArgs(int64(7), int64(7), int64(7), int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(450.0))

	mock.ExpectExec("UPDATE reservations SET total_amount=").
		WithArgs(450.0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := ReconcileRequest{
		ExchangeRate: 1350,
		ProductSet: models.ProductSet{
			Flights: []models.Flight{{
				ProductCore: models.ProductCore{ID: 3, AdultCount: 1, AdultPrice: 50, ExchangeRate: 1200},
			}},
			Hotels: []models.Hotel{{
				ProductCore: models.ProductCore{ID: 5, AdultCount: 2, AdultPrice: 100, RateEdited: true},
				Nights:      2,
			}},
		},
	}

	res, err := svc.Reconcile("20250110-JH001", req)
	if err != nil {
		t.Fatalf("reconcile error: %v", err)
	}
	if res.TotalAmount != 450 {
		t.Fatalf("total not refreshed from store: got %v", res.TotalAmount)
	}
	if res.ExchangeRate != 1350 {
		t.Fatalf("exchange rate not carried on result: got %v", res.ExchangeRate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReconcileRecomputesStrictlyAfterWrites(t *testing.T) {
	svc, mock, done := reconcileFixture(t)
	defer done()

	// single write job, so the in-order assertion pins the recompute after it
	mock.ExpectQuery("FROM reservations").WithArgs("20250110-JH002").
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(8, "20250110-JH002", "Pending", "", 1300.0, 0.0, "", ""))
	mock.ExpectExec("INSERT INTO flights").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("UNION ALL").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(50.0))
	mock.ExpectExec("UPDATE reservations SET total_amount=").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := ReconcileRequest{
		ProductSet: models.ProductSet{
			Flights: []models.Flight{{
				ProductCore: models.ProductCore{AdultCount: 1, AdultPrice: 50},
			}},
		},
	}
	if _, err := svc.Reconcile("20250110-JH002", req); err != nil {
		t.Fatalf("reconcile error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReconcileUnknownCode(t *testing.T) {
	svc, mock, done := reconcileFixture(t)
	defer done()

	mock.ExpectQuery("FROM reservations").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(reservationCols))

	_, err := svc.Reconcile("nope", ReconcileRequest{})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestReconcileSiblingWritesSurviveFailure(t *testing.T) {
	svc, mock, done := reconcileFixture(t)
	defer done()

	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM reservations").WithArgs("20250110-JH003").
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(9, "20250110-JH003", "Pending", "", 1300.0, 0.0, "", ""))

	boom := errors.New("flights write failed")
	mock.ExpectExec("INSERT INTO flights").WillReturnError(boom)
	mock.ExpectExec("INSERT INTO hotels").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := ReconcileRequest{
		ProductSet: models.ProductSet{
			Flights: []models.Flight{{ProductCore: models.ProductCore{ID: 3}}},
			Hotels:  []models.Hotel{{ProductCore: models.ProductCore{ID: 5}}},
		},
	}

	_, err := svc.Reconcile("20250110-JH003", req)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the failing write's error, got %v", err)
	}
	// the hotel write was still issued; nothing rolls it back
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sibling write should have landed: %v", err)
	}
}
