package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCodesSkipsGarbage(t *testing.T) {
	assert.Equal(t, []int{198, 640}, parseCodes("198, abc, 640,"))
	assert.Empty(t, parseCodes(""))
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("bogus", time.Minute))
	assert.Equal(t, 2*time.Hour, parseDuration("2h", time.Minute))
}
