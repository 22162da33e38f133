package services

import (
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateRejectsNegativeRate(t *testing.T) {
	svc := ReservationService{}
	_, err := svc.Create(CreateReservationRequest{ExchangeRate: -1})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDerivesTotalsBeforePersisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT code FROM reservations WHERE code LIKE").
		WithArgs("20250902-%").
		WillReturnRows(sqlmock.NewRows([]string{"code"}))
	mock.ExpectExec("INSERT INTO reservations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO clients").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO hotels").
		WithArgs(
			int64(1), "Pending",
			2, 0, 0,
			100.0, 0.0, 0.0,
			70.0, 0.0, 0.0,
			1300.0,
			// two nights at the reservation rate
			400.0, 280.0, int64(520000), int64(364000),
			"",
			"Da Nang", "Hyatt Regency", "2025-09-10", "2025-09-12", 2,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE reservations SET total_amount").
		WithArgs(400.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := ReservationService{
		ReservationRepo: repositories.ReservationRepository{DB: db},
		ClientRepo:      repositories.ClientRepository{DB: db},
		ProductRepo:     repositories.ProductRepository{DB: db},
		Now:             func() time.Time { return time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC) },
	}

	res, err := svc.Create(CreateReservationRequest{
		PrimaryClientName: "Kim Jihoo",
		ExchangeRate:      1300,
		Clients:           []models.Client{{Name: "Kim Jihoo", Phone: "010-1234"}},
		ProductSet: models.ProductSet{
			Hotels: []models.Hotel{{
				ProductCore: models.ProductCore{
					AdultCount: 2, AdultPrice: 100, AdultCost: 70, RateEdited: true,
				},
				Region: "Da Nang", HotelName: "Hyatt Regency",
				CheckIn: "2025-09-10", CheckOut: "2025-09-12", Nights: 2,
			}},
		},
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if res.Code != "20250902-JH001" {
		t.Fatalf("code: got %q", res.Code)
	}
	if res.Status != "Pending" {
		t.Fatalf("default status: got %q", res.Status)
	}
	if res.TotalAmount != 400 {
		t.Fatalf("total: got %v want 400", res.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
