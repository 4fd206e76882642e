package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirfredy/ynab-syncher-sub000/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Ynab.BaseURL = "https://api.ynab.com/v1"
	cfg.Data.CategoriesFile = "categories.yaml"
	cfg.Data.MappingsFile = "mappings.yaml"
	cfg.Reconciliation.Strategy = "range"
	return cfg
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Config())
	assert.NotNil(t, c.Service())
	assert.NotNil(t, c.Transactions())
	assert.NotNil(t, c.Client())
}

func TestNewContainerNilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}
