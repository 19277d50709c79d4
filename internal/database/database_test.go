package database

import (
	"errors"
	"testing"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnect_UniqueConstraints(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	email := "a@example.com"
	first := models.Registration{RSVPCode: "ABCD"}
	first.GuestEmail = &email
	require.NoError(t, db.Create(&first).Error)

	t.Run("DuplicateCode", func(t *testing.T) {
		dup := models.Registration{RSVPCode: "ABCD"}
		err := db.Create(&dup).Error
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup := models.Registration{RSVPCode: "WXYZ"}
		dup.GuestEmail = &email
		err := db.Create(&dup).Error
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
	})

	t.Run("NullEmailsMayRepeat", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Registration{RSVPCode: "EFGH"}).Error)
		require.NoError(t, db.Create(&models.Registration{RSVPCode: "IJKL"}).Error)
	})
}

func TestConnect_Timestamps(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	reg := models.Registration{RSVPCode: "QRST"}
	require.NoError(t, db.Create(&reg).Error)
	assert.False(t, reg.CreatedAt.IsZero())
	assert.False(t, reg.UpdatedAt.Before(reg.CreatedAt))

	created := reg.CreatedAt
	reg.Remarks = "later"
	require.NoError(t, db.Save(&reg).Error)

	var stored models.Registration
	require.NoError(t, db.First(&stored, reg.ID).Error)
	assert.True(t, stored.CreatedAt.Equal(created))
	assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt))
}
