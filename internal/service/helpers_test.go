package service_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/vitalog/backend/internal/service"
)

func patch(t *testing.T, doc string) service.Patch {
	t.Helper()
	var p service.Patch
	require.NoError(t, json.Unmarshal([]byte(doc), &p))
	return p
}

func errNotFound() error {
	return fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)
}
