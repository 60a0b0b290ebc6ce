package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9000", "-d", "postgres://u:p@h:5432/db", "-s", "topsecret", "-t", "10"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9000", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@h:5432/db", c.DatabaseDSN)
	assert.Equal(t, "topsecret", c.SecretKey)
	assert.Equal(t, 10*time.Minute, c.TokenValidityDuration)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9000"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9000", c.EndpointAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 5*time.Minute, c.TokenValidityDuration)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// -z belongs to some other component and must not break parsing
	os.Args = []string{"server", "-z", "junk", "-s", "k2"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "k2", c.SecretKey)
	assert.Equal(t, ":3005", c.EndpointAddr)
}
