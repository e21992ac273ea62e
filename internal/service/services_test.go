package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mock.NewMockCRMAdapter(ctrl)

	services, err := NewServices(crm, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.Contacts)
	require.NotNil(t, services.Deals)
}

func TestNewServices_ChildLoggersTagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	crm := mock.NewMockCRMAdapter(ctrl)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	services, err := NewServices(crm, log)
	require.NoError(t, err)

	crm.EXPECT().DeleteContact(gomock.Any(), "c-1").Return(nil)
	require.NoError(t, services.Contacts.Delete(context.Background(), "c-1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contact-service", entry["component"])
}
