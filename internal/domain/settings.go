package domain

type TimezoneOffset struct {
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// TimezoneInfo describes the configured display timezone at a given instant,
// including its DST state.
type TimezoneInfo struct {
	Timezone               string         `json:"timezone"`
	CurrentLocalTime       string         `json:"currentLocalTime"`
	CurrentUTCOffset       TimezoneOffset `json:"currentUtcOffset"`
	StandardUTCOffset      TimezoneOffset `json:"standardUtcOffset"`
	HasDayLightSaving      bool           `json:"hasDayLightSaving"`
	IsDayLightSavingActive bool           `json:"isDayLightSavingActive"`
}
