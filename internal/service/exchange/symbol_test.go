package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "XBTUSDT", Normalize("XBTUSDTM"))
	assert.Equal(t, "XBTUSDT", Normalize("XBTUSDTP"))
	assert.Equal(t, "BTCUSDT", Normalize("BTCUSDT"))
	assert.Equal(t, "ADAUSDT", Normalize("ADAUSDTM"))
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("BTCUSDT"), Normalize("btcusdtm"))
	assert.Equal(t, "ETHUSDT", Normalize("ethusdtm"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, native := range []string{"XBTUSDTM", "BTCUSDT", "ethusdtp", "DOGEUSDTM", "SOLM"} {
		once := Normalize(native)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %s", native)
	}
}
