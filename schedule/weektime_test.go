package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestWeekTimeLiteralAbsolute(t *testing.T) {
	assert.Equal(t, `{"seconds": 21600}`, weekTimeLiteral(ruleir.WeekTime{Seconds: 21600}))
}

func TestWeekTimeLiteralSunrise(t *testing.T) {
	assert.Equal(t, `{"symbol": "sunrise"}`, weekTimeLiteral(ruleir.WeekTime{Symbol: ruleir.SymbolSunrise}))
}

func TestWeekTimeLiteralSunset(t *testing.T) {
	assert.Equal(t, `{"symbol": "sunset"}`, weekTimeLiteral(ruleir.WeekTime{Symbol: ruleir.SymbolSunset}))
}
