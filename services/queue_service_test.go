package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"barbersystem-backend/models"
	"barbersystem-backend/services"
)

func setupQueueTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Visit{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCheckInDefaults(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	visit, err := svc.CheckIn("João Silva")
	assert.NoError(t, err)
	assert.Equal(t, "João Silva", visit.CustomerName)
	assert.False(t, visit.Paid)
	assert.Nil(t, visit.DepartedAt)
	assert.Equal(t, models.DefaultPrice, visit.Price)
	assert.False(t, visit.ArrivedAt.IsZero())
}

func TestCheckInArrivalsIncrease(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	first, err := svc.CheckIn("First")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := svc.CheckIn("Second")
	assert.NoError(t, err)
	assert.True(t, second.ArrivedAt.After(first.ArrivedAt))
}

func TestCheckInRejectsBlankName(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	for _, name := range []string{"", "   "} {
		_, err := svc.CheckIn(name)
		assert.Error(t, err)

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}

	// Nothing may have been persisted
	var count int64
	db.Model(&models.Visit{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListVisitsNewestFirst(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	earlier := time.Now().Add(-2 * time.Hour)
	later := time.Now().Add(-1 * time.Hour)
	db.Create(&models.Visit{CustomerName: "Early", ArrivedAt: earlier, Price: models.DefaultPrice})
	db.Create(&models.Visit{CustomerName: "Late", ArrivedAt: later, Price: models.DefaultPrice})

	visits, err := svc.ListVisits()
	assert.NoError(t, err)
	assert.Len(t, visits, 2)
	assert.Equal(t, "Late", visits[0].CustomerName)
	assert.Equal(t, "Early", visits[1].CustomerName)
}

func TestMarkDepartedAndPaidCommute(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	a, err := svc.CheckIn("Depart then pay")
	assert.NoError(t, err)
	b, err := svc.CheckIn("Pay then depart")
	assert.NoError(t, err)

	_, err = svc.MarkDeparted(a.ID)
	assert.NoError(t, err)
	_, err = svc.MarkPaid(a.ID)
	assert.NoError(t, err)

	_, err = svc.MarkPaid(b.ID)
	assert.NoError(t, err)
	_, err = svc.MarkDeparted(b.ID)
	assert.NoError(t, err)

	// Both orders converge on the same final state
	for _, id := range []uint{a.ID, b.ID} {
		var visit models.Visit
		assert.NoError(t, db.First(&visit, id).Error)
		assert.True(t, visit.Paid)
		assert.NotNil(t, visit.DepartedAt)
	}
}

func TestMarkUnknownVisit(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	_, err := svc.MarkDeparted(999)
	assert.ErrorIs(t, err, services.ErrVisitNotFound)

	_, err = svc.MarkPaid(999)
	assert.ErrorIs(t, err, services.ErrVisitNotFound)
}

func TestMarkDepartedOverwrites(t *testing.T) {
	db := setupQueueTestDB(t)
	svc := services.NewQueueService(db)

	visit, err := svc.CheckIn("Regular")
	assert.NoError(t, err)

	first, err := svc.MarkDeparted(visit.ID)
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := svc.MarkDeparted(visit.ID)
	assert.NoError(t, err)
	assert.True(t, second.DepartedAt.After(*first.DepartedAt))
}
