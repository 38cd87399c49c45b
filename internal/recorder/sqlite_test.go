package recorder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectMigrate(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS analysis_runs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_runs_ts").WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestRecordRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	expectMigrate(mock)
	r, err := newSQLiteRecorder(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rec := NewRunRecord("analyze", "5 100")
	rec.Source = "simulated"
	rec.Regime = "stable"
	rec.Count = 5
	rec.TopName = "AK-47 | Redline"
	rec.TopScore = 95
	rec.AvgScore = 71.4

	mock.ExpectExec("INSERT INTO analysis_runs").
		WithArgs(rec.ID.String(), sqlmock.AnyArg(), "analyze", "5 100", "simulated", "stable", 5, "AK-47 | Redline", 95, 71.4).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordRun_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	expectMigrate(mock)
	r, err := newSQLiteRecorder(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mock.ExpectExec("INSERT INTO analysis_runs").WillReturnError(errors.New("disk I/O error"))
	if err := r.RecordRun(NewRunRecord("search", "awp")); err == nil {
		t.Error("expected insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMigrate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS analysis_runs").WillReturnError(errors.New("read-only database"))
	if _, err := newSQLiteRecorder(db); err == nil {
		t.Error("expected migrate error")
	}
}

func TestSQLiteRecorder_File(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "nested", "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	for _, cmd := range []string{"analyze", "invest"} {
		rec := NewRunRecord(cmd, "")
		rec.Source = "live"
		if err := r.RecordRun(rec); err != nil {
			t.Fatalf("record %s: %v", cmd, err)
		}
	}

	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM analysis_runs").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 runs, got %d", n)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.RecordRun(NewRunRecord("analyze", "")); err != nil {
		t.Error(err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}
