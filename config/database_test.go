package config

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
)

func TestLoggerIgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf)
	query := func() (string, int64) { return "SELECT * FROM categories WHERE id = 'x'", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), query, errors.New("no such table: categories"))
	assert.Contains(t, buf.String(), "no such table")
}

func TestOpenMissingRowIsQuiet(t *testing.T) {
	db, err := Open("sqlite", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)

	var buf bytes.Buffer
	quiet := db.Session(&gorm.Session{Logger: newLogger(&buf)})

	err = quiet.Where("id = ?", "missing").First(&models.Category{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}
