package repositories

import (
	"testing"

	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOptionBulkInsertIsOneStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// one multi-row statement for the whole batch
	mock.ExpectExec(`INSERT INTO options \(.*\) VALUES \(.*\),\(.*\)`).
		WillReturnResult(sqlmock.NewResult(10, 2))

	repo := OptionRepository{DB: db}
	got, err := repo.BulkInsert([]models.Option{
		{ProductType: "hotel", ProductID: 5, Title: "Breakfast"},
		{ProductType: "hotel", ProductID: 5, Title: "Late checkout"},
	})
	if err != nil {
		t.Fatalf("bulk insert error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows back, got %d", len(got))
	}
	if got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("ids should follow the first insert id: got %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Title != "Breakfast" || got[1].Title != "Late checkout" {
		t.Fatalf("row payloads reordered: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOptionBulkInsertEmptyBatchSkipsDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := OptionRepository{DB: db}
	got, err := repo.BulkInsert(nil)
	if err != nil {
		t.Fatalf("empty batch error: %v", err)
	}
	if got != nil {
		t.Fatalf("empty batch should return nil, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db traffic: %v", err)
	}
}

func TestOptionUpdateByIDTargetsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE options SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := OptionRepository{DB: db}
	o := models.Option{ID: 11, ProductType: "flight", ProductID: 3, Title: "Extra bag"}
	got, err := repo.UpdateByID(o)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.ID != 11 {
		t.Fatalf("update should echo the row back, got id %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
