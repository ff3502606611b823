package models

// Memory represents memory counters in bytes
type Memory struct {
	Total     uint64 `json:"total"`
	Free      uint64 `json:"free"`
	Used      uint64 `json:"used"`
	Active    uint64 `json:"active"`
	Available uint64 `json:"available"`
	SwapTotal uint64 `json:"swaptotal"`
	SwapUsed  uint64 `json:"swapused"`
	SwapFree  uint64 `json:"swapfree"`
}
