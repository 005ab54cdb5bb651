package clipdb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gowvp/camclip/internal/core/clip"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func generateMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}
	return db, mock, nil
}

func TestClipGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	clipDB := NewDB(db).Clip()

	mock.ExpectQuery(`SELECT \* FROM "clips" WHERE id=\$1 (.+) LIMIT \$2`).
		WithArgs("cl_1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "status"}).
			AddRow("cl_1", "ev_1", clip.StatusWritten))

	var out clip.Clip
	if err := clipDB.Get(context.Background(), &out, orm.Where("id=?", "cl_1")); err != nil {
		t.Fatal(err)
	}
	if out.Status != clip.StatusWritten {
		t.Errorf("status = %s, want written", out.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestEventAdd(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	eventDB := NewDB(db).Event()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	te := 110.0
	in := clip.Event{
		ID:        "ev_1",
		StartSec:  100,
		EndSec:    &te,
		VideoFile: "cam1.mp4",
		CreatedAt: orm.Now(),
	}
	if err := eventDB.Add(context.Background(), &in); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}
